package gf2p8

// MulSlice sets each out[i] to c * in[i]. out must be at least as
// long as in.
func (f *Field) MulSlice(c byte, in, out []byte) {
	if c == 0 {
		for i := range in {
			out[i] = 0
		}
		return
	}
	logC := int(f.log[c])
	for i, x := range in {
		out[i] = f.mulLog(logC, x)
	}
}

// MulAndAddSlice adds c * in[i] to out[i], for each i. out must be at
// least as long as in.
func (f *Field) MulAndAddSlice(c byte, in, out []byte) {
	if c == 0 {
		return
	}
	logC := int(f.log[c])
	for i, x := range in {
		out[i] ^= f.mulLog(logC, x)
	}
}

// mulLog returns 2^logC * x, for logC a valid discrete log.
func (f *Field) mulLog(logC int, x byte) byte {
	if x == 0 {
		return 0
	}
	y := logC + int(f.log[x])
	if y >= order-1 {
		y -= order - 1
	}
	return f.pow[y]
}

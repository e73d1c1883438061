package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akalin/golfsr/errorcode"
)

func run(args ...string) (string, string, error) {
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readGolden(t *testing.T, name string) string {
	data, err := os.ReadFile(filepath.Join("..", "..", "render", "testdata", name))
	require.NoError(t, err)
	return string(data)
}

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "lfsr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestSolve(t *testing.T) {
	out, _, err := run("solve", "1011001")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "gf2.golden"), out)

	spaced, _, err := run("solve", "1", "0 1", "1001")
	require.NoError(t, err)
	require.Equal(t, out, spaced)

	out, _, err = run("solve")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "empty.golden"), out)
}

func TestSolve256(t *testing.T) {
	out, _, err := run("solve256", "01", "02", "04", "08", "10")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "gf256.golden"), out)

	out, _, err = run("solve256", "-p", "0x11d", "0a c9 db c0", "0x04", "03", "02", "01")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "gf256_known.golden"), out)
}

func TestSolveRandom(t *testing.T) {
	out, _, err := run("solve", "-r", "5", "--seed", "1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Solving: "))
	require.Contains(t, out, "\nL10 = ")

	again, _, err := run("solve", "-r", "5", "--seed", "1")
	require.NoError(t, err)
	require.Equal(t, out, again)

	out, _, err = run("solve256", "--random", "3", "--seed", "2")
	require.NoError(t, err)
	require.Contains(t, out, "\nL6 = ")
	fields := strings.Fields(strings.SplitN(out, "\n", 2)[0])
	require.Len(t, fields, 1+6)

	cfgPath := writeConfig(t, "random:\n  seed: 2\n")
	fromConfig, _, err := run("--config", cfgPath, "solve256", "-r", "3")
	require.NoError(t, err)
	require.Equal(t, out, fromConfig)
}

func TestSolveVerbose(t *testing.T) {
	_, stderr, err := run("solve", "11")
	require.NoError(t, err)
	require.Empty(t, stderr)

	_, stderr, err = run("-v", "solve", "11")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"step"`)
	require.Contains(t, stderr, `"case":"grow"`)
	require.Contains(t, stderr, `"msg":"solved"`)
}

func TestSolveColor(t *testing.T) {
	out, _, err := run("--color", "always", "solve", "1011001")
	require.NoError(t, err)
	require.Contains(t, out, "\x1b[")
	require.NotEqual(t, readGolden(t, "gf2.golden"), out)

	out, _, err = run("--color", "never", "solve", "1011001")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "gf2.golden"), out)
}

func TestTables(t *testing.T) {
	out, _, err := run("tables")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "tables_11d.golden"), out)

	out, _, err = run("tables", "0x12b", "2", "--log")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "log_12b.golden"), out)

	out, _, err = run("tables", "--pow", "--prefix", "GF")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "// power table, GF_GF_POW[x] = g^x\n"))
	require.NotContains(t, out, "GF_GF_LOG")

	cfgPath := writeConfig(t, "field:\n  poly: 0x12b\noutput:\n  prefix: RAMRSBD\n")
	out, _, err = run("--config", cfgPath, "tables", "--log")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "log_12b.golden"), out)
}

func TestRSPoly(t *testing.T) {
	out, _, err := run("rspoly", "10")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "rspoly_10.golden"), out)

	out, _, err = run("rspoly", "-T", "10")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "rspoly_10_full.golden"), out)

	out, _, err = run("rspoly", "-p", "0x12d", "0x20")
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "rspoly_12d_32.golden"), out)
}

func TestRSEncodeCorrect(t *testing.T) {
	const code = "68656c6c6f20776f726c64d7013ebb73"

	out, _, err := run("rs", "encode", "-e", "5", "68656c6c6f20776f726c64")
	require.NoError(t, err)
	require.Equal(t, code+"\n", out)

	out, stderr, err := run("rs", "correct", "-e", "5", code)
	require.NoError(t, err)
	require.Equal(t, code+"\n", out)
	require.Empty(t, stderr)

	out, stderr, err = run("rs", "correct", "-e", "5", "00656c6c6fff776f726c64d7013ebb73")
	require.NoError(t, err)
	require.Equal(t, code+"\n", out)
	require.Equal(t, "corrected 2 byte errors\n", stderr)

	_, _, err = run("rs", "correct", "-e", "5", "--max-errors", "1", "00656c6c6fff776f726c64d7013ebb73")
	require.Equal(t, errorcode.Uncorrectable, errorcode.For(err))

	_, _, err = run("rs", "correct", "-e", "4", "000203030506070809 5f0b0c42e33499")
	require.Equal(t, errorcode.Uncorrectable, errorcode.For(err))
}

func TestErrors(t *testing.T) {
	badConfig := writeConfig(t, "field:\n  poly: 0x11b\n")
	for i, test := range []struct {
		args []string
		code errorcode.Errorcode
	}{
		{[]string{"solve", "102"}, errorcode.InvalidCommandLineArguments},
		{[]string{"solve", "-r", "-2"}, errorcode.InvalidCommandLineArguments},
		{[]string{"solve", "--bogus"}, errorcode.InvalidCommandLineArguments},
		{[]string{"solve256", "100"}, errorcode.InvalidCommandLineArguments},
		{[]string{"solve256", "-p", "0x11b", "01"}, errorcode.UnsupportedField},
		{[]string{"tables", "0x11b"}, errorcode.UnsupportedField},
		{[]string{"tables", "0x11d", "3"}, errorcode.InvalidCommandLineArguments},
		{[]string{"tables", "1", "2", "3"}, errorcode.InvalidCommandLineArguments},
		{[]string{"rspoly"}, errorcode.InvalidCommandLineArguments},
		{[]string{"rspoly", "-1"}, errorcode.InvalidCommandLineArguments},
		{[]string{"rs", "encode", "zz"}, errorcode.InvalidCommandLineArguments},
		{[]string{"rs", "encode", ""}, errorcode.InvalidCommandLineArguments},
		{[]string{"rs", "correct", "-e", "4", "0102"}, errorcode.InvalidCommandLineArguments},
		{[]string{"--color", "sometimes", "solve", "1"}, errorcode.InvalidCommandLineArguments},
		{[]string{"--config", badConfig, "solve", "1"}, errorcode.ConfigError},
	} {
		_, _, err := run(test.args...)
		require.Error(t, err, "i=%d", i)
		assert.Equal(t, test.code, errorcode.For(err), "i=%d, err=%v", i, err)
	}
}

// Package errorcode maps errors to the lfsr tool's exit codes.
package errorcode

import (
	"errors"

	"github.com/akalin/golfsr/bm"
	"github.com/akalin/golfsr/config"
	"github.com/akalin/golfsr/gf2p8"
	"github.com/akalin/golfsr/rs"
)

type Errorcode int

const (
	Success                     Errorcode = 0
	InvalidCommandLineArguments Errorcode = 1
	UnsupportedField            Errorcode = 2
	Uncorrectable               Errorcode = 3
	ConfigError                 Errorcode = 4
	LogicError                  Errorcode = 5
)

// UsageError marks an error as caused by bad command-line arguments.
type UsageError struct {
	Err error
}

func (e UsageError) Error() string {
	return e.Err.Error()
}

func (e UsageError) Unwrap() error {
	return e.Err
}

// For returns the exit code for err, which may be nil.
func For(err error) Errorcode {
	var usage UsageError
	switch {
	case err == nil:
		return Success
	case errors.As(err, &usage), errors.Is(err, rs.ErrInvalidSize), errors.Is(err, bm.ErrInvalidSize):
		return InvalidCommandLineArguments
	case errors.Is(err, config.ErrInvalidConfig):
		return ConfigError
	case errors.Is(err, gf2p8.ErrUnsupportedField):
		return UnsupportedField
	case errors.Is(err, rs.ErrTooManyErrors), errors.Is(err, rs.ErrUncorrectable):
		return Uncorrectable
	default:
		return LogicError
	}
}

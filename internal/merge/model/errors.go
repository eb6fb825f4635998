package model

import (
	"errors"
	"fmt"
)

// The two failure kinds callers can recover from differently:
// bad configuration means re-prompt for columns/threshold, bad data
// means the uploaded file itself has to change.
var (
	ErrBadConfig = errors.New("bad configuration")
	ErrBadData   = errors.New("bad data")
)

// BadConfigf wraps ErrBadConfig so errors.Is(err, ErrBadConfig) holds.
func BadConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadConfig}, args...)...)
}

// BadDataf wraps ErrBadData so errors.Is(err, ErrBadData) holds.
func BadDataf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadData}, args...)...)
}

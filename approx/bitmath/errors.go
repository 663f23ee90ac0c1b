package bitmath

import "errors"

// ErrUnknownSize is returned by ParseSize for names it does not recognize.
var ErrUnknownSize = errors.New("unknown table size")

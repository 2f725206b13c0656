package arith

import "errors"

var (
	// ErrCorruptStream is returned when a cumulative-frequency lookup
	// during decode yields no symbol, meaning the coder and model have
	// gone out of sync with the encoder, which only happens on malformed
	// input.
	ErrCorruptStream = errors.New("arith: corrupt stream, symbol lookup out of range")
)

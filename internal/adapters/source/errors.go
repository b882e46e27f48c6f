package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrReadPayload   = errors.New("read payload failed")
	ErrDecodePayload = errors.New("decode payload failed")
)

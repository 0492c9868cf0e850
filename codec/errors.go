package codec

import "errors"

var (
	// ErrInvalidHex indicates the input is not a valid hex string.
	ErrInvalidHex = errors.New("codec: invalid hex input")

	// ErrMalformedInput indicates the Base58Check input cannot be decoded.
	ErrMalformedInput = errors.New("codec: malformed base58check input")

	// ErrChecksumMismatch indicates the Base58Check checksum failed verification.
	ErrChecksumMismatch = errors.New("codec: checksum mismatch")
)

package codec

import (
	"fmt"

	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/btcsuite/btcutil/base58"
)

const (
	// ChecksumLen is the standard Base58Check checksum width (WIF keys).
	ChecksumLen = 4

	// FullChecksumLen is the full double-SHA256 digest width. Addresses
	// carry the whole digest instead of truncating it.
	FullChecksumLen = 32
)

// Base58CheckEncode appends the first checksumLen bytes of the payload's
// double-SHA256 digest and Base58-encodes the result.
func Base58CheckEncode(payload []byte, checksumLen int) string {
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, hash.Sha256d(payload)[:checksumLen]...)
	return base58.Encode(buf)
}

// Base58CheckDecode decodes a Base58Check string, verifies the trailing
// checksumLen-byte checksum, and returns the payload without it.
func Base58CheckDecode(s string, checksumLen int) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return nil, fmt.Errorf("%w: not base58", ErrMalformedInput)
	}
	if len(decoded) < checksumLen {
		return nil, fmt.Errorf("%w: payload shorter than %d-byte checksum", ErrMalformedInput, checksumLen)
	}

	payload := decoded[:len(decoded)-checksumLen]
	checksum := decoded[len(decoded)-checksumLen:]

	expected := hash.Sha256d(payload)[:checksumLen]
	for i := range checksum {
		if checksum[i] != expected[i] {
			return nil, ErrChecksumMismatch
		}
	}

	return payload, nil
}

package key

import "errors"

var (
	// ErrBadMnemonic indicates the mnemonic fails BIP39 validation.
	ErrBadMnemonic = errors.New("key: invalid BIP39 mnemonic phrase")

	// ErrInvalidSeed indicates the seed is not 64 bytes.
	ErrInvalidSeed = errors.New("key: seed must be 64 bytes")

	// ErrKeyTooLong indicates the seed-derived candidate scalar does not fit
	// the curve order.
	ErrKeyTooLong = errors.New("key: candidate scalar does not fit the curve order")

	// ErrInvalidScalar indicates a scalar outside (0, curve order).
	ErrInvalidScalar = errors.New("key: scalar out of range")

	// ErrIndexOutOfRange indicates a derivation index outside the permitted
	// normal or hardened window.
	ErrIndexOutOfRange = errors.New("key: derivation index out of range")

	// ErrChecksumMismatch indicates a WIF string failed checksum verification.
	ErrChecksumMismatch = errors.New("key: WIF checksum mismatch")

	// ErrInvalidNetworkByte indicates a WIF version byte that is neither
	// mainnet (0x80) nor testnet (0xef).
	ErrInvalidNetworkByte = errors.New("key: unrecognized network version byte")

	// ErrMalformedWIF indicates a WIF payload with an invalid shape.
	ErrMalformedWIF = errors.New("key: malformed WIF payload")

	// ErrInvalidDigest indicates a signing input that is not a 32-byte digest.
	ErrInvalidDigest = errors.New("key: message digest must be 32 bytes")

	// ErrInvalidPoint indicates public-key point math produced a point not
	// usable as a public key.
	ErrInvalidPoint = errors.New("key: derived point is not a valid public key")

	// ErrInvalidNetwork indicates an unknown network name.
	ErrInvalidNetwork = errors.New("key: invalid network name")
)

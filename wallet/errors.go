package wallet

import "errors"

var (
	// ErrInvalidEntropy means a mnemonic was requested with an unsupported
	// entropy size.
	ErrInvalidEntropy = errors.New("wallet: entropy must be 128 or 256 bits")

	// ErrInvalidMnemonic means a mnemonic failed BIP39 validation.
	ErrInvalidMnemonic = errors.New("wallet: invalid mnemonic")

	// ErrKeyPairMismatch means a key pair's public key does not belong to
	// its private key.
	ErrKeyPairMismatch = errors.New("wallet: public key does not match private key")

	// ErrRootExists means a second parentless node was inserted.
	ErrRootExists = errors.New("wallet: arena already has a root")

	// ErrUnknownParent means a node referenced a parent id that does not
	// exist in the arena.
	ErrUnknownParent = errors.New("wallet: unknown parent node")

	// ErrNoMaster means an operation needing the root key ran on an
	// uninitialized wallet.
	ErrNoMaster = errors.New("wallet: no master key")

	// ErrAddressNotFound means no node in the tree pays to the requested
	// address.
	ErrAddressNotFound = errors.New("wallet: address not found")

	// ErrNoState means the store holds no saved wallet.
	ErrNoState = errors.New("wallet: no stored state")

	// ErrDecryptionFailed means a wallet file could not be decrypted,
	// usually a wrong passphrase.
	ErrDecryptionFailed = errors.New("wallet: decryption failed")

	// ErrChecksumMismatch means decrypted wallet data failed its integrity
	// check.
	ErrChecksumMismatch = errors.New("wallet: checksum mismatch after decryption")

	// ErrUnsupportedVersion means a wallet file was written by an unknown
	// format version.
	ErrUnsupportedVersion = errors.New("wallet: unsupported wallet file version")
)

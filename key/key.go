// Package key implements hierarchical-deterministic Bitcoin private keys:
// master-key construction from a BIP39 mnemonic, normal and hardened child
// derivation, public-key-only child derivation, WIF import/export, address
// encoding, and ECDSA signing over 32-byte digests.
//
// The derivation rules are deliberately those of the wallet format this
// package persists, not BIP32: the master key hashes the seed with plain
// SHA-512, child indices are serialized little-endian, and addresses carry
// the full 32-byte double-SHA256 checksum. The package tests pin each rule
// to known vectors.
package key

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/bsv-blockchain/go-sdk/compat/bip39"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"

	"github.com/hdwalletorg/libhdwallet-go/codec"
)

const (
	// KeyLen is the private-key scalar length in bytes.
	KeyLen = 32

	// ChainCodeLen is the chain-code length in bytes.
	ChainCodeLen = 32

	// SeedLen is the BIP39 seed length in bytes.
	SeedLen = 64
)

// Key is an HD private key: a secp256k1 scalar plus the chain code used to
// derive its children. Keys are immutable after construction; the scalar is
// always in (0, curve order).
type Key struct {
	bytes              []byte
	chainCode          []byte
	network            Network
	compressPublicKeys bool
}

// New creates a master key from a BIP39 mnemonic phrase with an empty
// passphrase. The 64-byte seed is hashed with SHA-512; the low 32 bytes
// become the private scalar and the high 32 bytes the chain code.
func New(mnemonic string, network Network, compressPublicKeys bool) (*Key, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMnemonic, err)
	}
	return NewFromSeed(seed, network, compressPublicKeys)
}

// NewFromSeed creates a master key directly from a 64-byte seed.
func NewFromSeed(seed []byte, network Network, compressPublicKeys bool) (*Key, error) {
	if len(seed) != SeedLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSeed, len(seed))
	}

	sum := hash.Sha512(seed)
	scalar := sum[:KeyLen]
	chainCode := sum[KeyLen:]

	if err := validateScalar(scalar); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyTooLong, err)
	}

	return &Key{
		bytes:              scalar,
		chainCode:          chainCode,
		network:            network,
		compressPublicKeys: compressPublicKeys,
	}, nil
}

// PublicKey returns the serialized public key for this private key:
// 33 bytes (0x02/0x03 prefix) when compression is enabled, 65 bytes
// (0x04 prefix) otherwise.
func (k *Key) PublicKey() []byte {
	_, pub := ec.PrivateKeyFromBytes(k.bytes)
	if k.compressPublicKeys {
		return pub.Compressed()
	}
	return pub.Uncompressed()
}

// Address returns the Base58 address for this key's public key: a network
// version byte, HASH160 of the public key, and the full 32-byte
// double-SHA256 checksum.
func (k *Key) Address() (string, error) {
	if err := validateScalar(k.bytes); err != nil {
		return "", err
	}

	payload := make([]byte, 0, 1+20)
	payload = append(payload, k.network.AddressVersion())
	payload = append(payload, hash.Hash160(k.PublicKey())...)

	return codec.Base58CheckEncode(payload, codec.FullChecksumLen), nil
}

// SignData signs a 32-byte message digest with ECDSA over secp256k1 and
// returns the DER-serialized signature.
func (k *Key) SignData(digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidDigest, len(digest))
	}

	priv, _ := ec.PrivateKeyFromBytes(k.bytes)
	sig, err := priv.Sign(digest)
	if err != nil {
		return nil, fmt.Errorf("key: sign digest: %w", err)
	}
	return sig.Serialize(), nil
}

// ExtendedPrivateKey returns the private key with the chain code appended.
func (k *Key) ExtendedPrivateKey() []byte {
	out := make([]byte, 0, len(k.bytes)+len(k.chainCode))
	out = append(out, k.bytes...)
	out = append(out, k.chainCode...)
	return out
}

// ExtendedPublicKey returns the serialized public key with the chain code
// appended.
func (k *Key) ExtendedPublicKey() []byte {
	pub := k.PublicKey()
	out := make([]byte, 0, len(pub)+len(k.chainCode))
	out = append(out, pub...)
	out = append(out, k.chainCode...)
	return out
}

// Bytes returns a copy of the private-key scalar.
func (k *Key) Bytes() []byte {
	out := make([]byte, len(k.bytes))
	copy(out, k.bytes)
	return out
}

// ChainCode returns a copy of the chain code.
func (k *Key) ChainCode() []byte {
	out := make([]byte, len(k.chainCode))
	copy(out, k.chainCode)
	return out
}

// Hex returns the private-key scalar as a hex string.
func (k *Key) Hex() string {
	return hex.EncodeToString(k.bytes)
}

// Network returns the network this key encodes for.
func (k *Key) Network() Network {
	return k.network
}

// CompressPublicKeys reports whether public keys serialize compressed.
func (k *Key) CompressPublicKeys() bool {
	return k.compressPublicKeys
}

// validateScalar checks that b is exactly 32 bytes encoding a big-endian
// integer in (0, curve order).
func validateScalar(b []byte) error {
	if len(b) != KeyLen {
		return fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrInvalidScalar, KeyLen, len(b))
	}

	v := new(big.Int).SetBytes(b)
	if v.Sign() == 0 {
		return fmt.Errorf("%w: scalar is zero", ErrInvalidScalar)
	}
	if v.Cmp(ec.S256().N) >= 0 {
		return fmt.Errorf("%w: scalar exceeds curve order", ErrInvalidScalar)
	}
	return nil
}

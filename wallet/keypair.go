package wallet

import (
	"bytes"
	"fmt"

	"github.com/hdwalletorg/libhdwallet-go/key"
)

// KeyType classifies a node in the key tree by how its key was derived.
type KeyType int

const (
	// Master is the root key hashed straight from the wallet seed.
	Master KeyType = iota

	// Normal is a child derived from the parent public key.
	Normal

	// Hardened is a child derived from the parent private key.
	Hardened
)

// String returns the key type name.
func (t KeyType) String() string {
	switch t {
	case Master:
		return "master"
	case Normal:
		return "normal"
	case Hardened:
		return "hardened"
	default:
		return fmt.Sprintf("keytype(%d)", int(t))
	}
}

// MarshalText encodes the key type as its name.
func (t KeyType) MarshalText() ([]byte, error) {
	switch t {
	case Master, Normal, Hardened:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("wallet: unknown key type %d", int(t))
	}
}

// UnmarshalText decodes a key type from its name.
func (t *KeyType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "master":
		*t = Master
	case "normal":
		*t = Normal
	case "hardened":
		*t = Hardened
	default:
		return fmt.Errorf("wallet: unknown key type %q", text)
	}
	return nil
}

// KeyPair couples a private key with its serialized public key and records
// how the key was derived. Index is nil for the master key and holds the
// derivation index for children.
type KeyPair struct {
	PrivateKey *key.Key
	PublicKey  []byte
	Type       KeyType
	Index      *uint64
}

// NewKeyPair builds a key pair from a private key, serializing the public
// key with the key's own compression setting.
func NewKeyPair(priv *key.Key, keyType KeyType, index *uint64) *KeyPair {
	return &KeyPair{
		PrivateKey: priv,
		PublicKey:  priv.PublicKey(),
		Type:       keyType,
		Index:      index,
	}
}

// Validate checks that the public key belongs to the private key.
func (kp *KeyPair) Validate() error {
	if kp.PrivateKey == nil {
		return fmt.Errorf("%w: nil private key", ErrKeyPairMismatch)
	}
	if !bytes.Equal(kp.PublicKey, kp.PrivateKey.PublicKey()) {
		return fmt.Errorf("%w: key %s", ErrKeyPairMismatch, kp.PrivateKey.Hex())
	}
	return nil
}

// Address returns the Base58 address the key pair pays to.
func (kp *KeyPair) Address() (string, error) {
	return kp.PrivateKey.Address()
}

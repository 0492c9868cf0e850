package key

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// keyJSON is the persisted form of a Key. Private material is hex-encoded;
// wallet files holding it are expected to be encrypted at rest by their
// store.
type keyJSON struct {
	Bytes              string  `json:"bytes"`
	ChainCode          string  `json:"chain_code"`
	Network            Network `json:"network"`
	CompressPublicKeys bool    `json:"compress_public_keys"`
}

// MarshalJSON encodes the key for wallet persistence.
func (k *Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(keyJSON{
		Bytes:              hex.EncodeToString(k.bytes),
		ChainCode:          hex.EncodeToString(k.chainCode),
		Network:            k.network,
		CompressPublicKeys: k.compressPublicKeys,
	})
}

// UnmarshalJSON decodes a persisted key, re-validating the scalar and chain
// code so a corrupted wallet file cannot produce an invalid Key.
func (k *Key) UnmarshalJSON(data []byte) error {
	var enc keyJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("key: decode key: %w", err)
	}

	scalar, err := hex.DecodeString(enc.Bytes)
	if err != nil {
		return fmt.Errorf("key: decode key bytes: %w", err)
	}
	if err := validateScalar(scalar); err != nil {
		return err
	}

	chainCode, err := hex.DecodeString(enc.ChainCode)
	if err != nil {
		return fmt.Errorf("key: decode chain code: %w", err)
	}
	if len(chainCode) != ChainCodeLen {
		return fmt.Errorf("key: chain code must be %d bytes, got %d", ChainCodeLen, len(chainCode))
	}

	k.bytes = scalar
	k.chainCode = chainCode
	k.network = enc.Network
	k.compressPublicKeys = enc.CompressPublicKeys
	return nil
}

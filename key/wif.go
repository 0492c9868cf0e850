package key

import (
	"errors"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/compat/bip39"
	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"

	"github.com/hdwalletorg/libhdwallet-go/codec"
)

// compressionSuffix marks a WIF key whose public keys serialize compressed.
const compressionSuffix = 0x01

// ToWIF returns the wallet-import-format encoding of the private key: a
// network version byte, the 32 key bytes, an optional compression suffix,
// and a 4-byte Base58Check checksum.
func (k *Key) ToWIF() string {
	payload := make([]byte, 0, 1+KeyLen+1)
	payload = append(payload, k.network.WIFVersion())
	payload = append(payload, k.bytes...)
	if k.compressPublicKeys {
		payload = append(payload, compressionSuffix)
	}
	return codec.Base58CheckEncode(payload, codec.ChecksumLen)
}

// FromWIF imports a private key from its wallet-import-format string. The
// network is recovered from the version byte and the compression flag from a
// trailing 0x01 after the 32 key bytes.
//
// The chain code is regenerated deterministically from the key material by
// treating the key bytes as BIP39 entropy, so an imported key can go on
// deriving children.
func FromWIF(input string) (*Key, error) {
	payload, err := codec.Base58CheckDecode(input, codec.ChecksumLen)
	if err != nil {
		if errors.Is(err, codec.ErrChecksumMismatch) {
			return nil, fmt.Errorf("%w: %w", ErrChecksumMismatch, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedWIF, err)
	}

	if len(payload) < 1+KeyLen {
		return nil, fmt.Errorf("%w: %d bytes after checksum", ErrMalformedWIF, len(payload))
	}

	var network Network
	switch payload[0] {
	case wifVersionMainnet:
		network = Mainnet
	case wifVersionTestnet:
		network = Testnet
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidNetworkByte, payload[0])
	}

	body := payload[1:]
	compress := false
	if len(body) > KeyLen && body[KeyLen] == compressionSuffix {
		compress = true
		body = body[:KeyLen]
	}
	if len(body) != KeyLen {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrMalformedWIF, KeyLen, len(body))
	}

	scalar := make([]byte, KeyLen)
	copy(scalar, body)
	if err := validateScalar(scalar); err != nil {
		return nil, err
	}

	chainCode, err := chainCodeFromKeyBytes(scalar)
	if err != nil {
		return nil, err
	}

	return &Key{
		bytes:              scalar,
		chainCode:          chainCode,
		network:            network,
		compressPublicKeys: compress,
	}, nil
}

// chainCodeFromKeyBytes rebuilds a chain code for an imported key: the key
// bytes act as BIP39 entropy, the resulting phrase is stretched to a seed,
// and the high half of its SHA-512 digest is the chain code.
func chainCodeFromKeyBytes(keyBytes []byte) ([]byte, error) {
	mnemonic, err := bip39.NewMnemonic(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: rebuild chain code: %w", ErrMalformedWIF, err)
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("%w: rebuild chain code: %w", ErrMalformedWIF, err)
	}

	return hash.Sha512(seed)[KeyLen:], nil
}

package key

import (
	"encoding/binary"
	"fmt"
	"math/big"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"

	"github.com/hdwalletorg/libhdwallet-go/codec"
)

// ChildKeyType selects normal or hardened child derivation.
type ChildKeyType int

const (
	// Normal children derive from the parent public key; a matching
	// public-only derivation exists for them.
	Normal ChildKeyType = iota

	// Hardened children derive from the parent private key, so a leaked
	// child cannot be linked through the parent public key.
	Hardened
)

const (
	// MaxNormalIndex is the largest normal derivation index, 2^31 - 1.
	MaxNormalIndex = 1<<31 - 1

	// MinHardenedIndex is the smallest accepted hardened index. The window
	// includes the 2^31 - 1 boundary value itself; conventional hardened
	// derivation starts one above it.
	MinHardenedIndex = 1<<31 - 1

	// MaxHardenedIndex is the largest hardened derivation index, 2^32 - 1.
	MaxHardenedIndex = 1<<32 - 1
)

// curveOrderLE reads the curve-order bytes in the same signed little-endian
// form as the scalars it reduces. This is not the numeric curve order; it is
// the modulus the derivation arithmetic is defined over, and the published
// child-key vectors depend on it.
var curveOrderLE = codec.SignedLE(ec.S256().N.FillBytes(make([]byte, KeyLen)))

// DeriveChildPrivateKey derives a child private key at the given index.
//
// Normal derivation MACs the serialized parent public key followed by the
// index as 8 little-endian bytes. Hardened derivation MACs the parent
// private key bytes alone; the index participates only in the range check.
// Both are keyed by the parent chain code, and the child inherits the
// network and compression flag.
func (k *Key) DeriveChildPrivateKey(index uint64, keyType ChildKeyType) (*Key, error) {
	var data []byte
	switch keyType {
	case Normal:
		if index > MaxNormalIndex {
			return nil, fmt.Errorf("%w: normal index %d exceeds %d", ErrIndexOutOfRange, index, uint64(MaxNormalIndex))
		}
		pub := k.PublicKey()
		data = make([]byte, 0, len(pub)+8)
		data = append(data, pub...)
		data = binary.LittleEndian.AppendUint64(data, index)
	case Hardened:
		if index < MinHardenedIndex || index > MaxHardenedIndex {
			return nil, fmt.Errorf("%w: hardened index %d outside [%d, %d]", ErrIndexOutOfRange, index, uint64(MinHardenedIndex), uint64(MaxHardenedIndex))
		}
		data = k.bytes
	default:
		return nil, fmt.Errorf("key: unknown child key type %d", keyType)
	}

	sum := hash.Sha512HMAC(data, k.chainCode)
	il := sum[:KeyLen]
	childChainCode := sum[KeyLen:]

	childBytes, err := addScalars(il, k.bytes)
	if err != nil {
		return nil, err
	}

	return &Key{
		bytes:              childBytes,
		chainCode:          childChainCode,
		network:            k.network,
		compressPublicKeys: k.compressPublicKeys,
	}, nil
}

// DeriveChildPublicKey derives a normal child's extended public key without
// touching the private scalar: the MAC left half is mapped to a curve point
// and added to the parent public-key point. The result is the compressed sum
// followed by the child chain code (65 bytes). Hardened children have no
// public-only derivation.
func (k *Key) DeriveChildPublicKey(index uint32) ([]byte, error) {
	if index > MaxNormalIndex {
		return nil, fmt.Errorf("%w: normal index %d exceeds %d", ErrIndexOutOfRange, index, uint64(MaxNormalIndex))
	}

	parentPub := k.PublicKey()
	data := make([]byte, 0, len(parentPub)+4)
	data = append(data, parentPub...)
	data = binary.LittleEndian.AppendUint32(data, index)

	sum := hash.Sha512HMAC(data, k.chainCode)
	il := sum[:KeyLen]
	childChainCode := sum[KeyLen:]

	if err := validateScalar(il); err != nil {
		return nil, err
	}

	_, ilPub := ec.PrivateKeyFromBytes(il)
	parentPoint, err := ec.PublicKeyFromBytes(parentPub)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPoint, err)
	}

	x, y := ec.S256().Add(ilPub.X, ilPub.Y, parentPoint.X, parentPoint.Y)
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, fmt.Errorf("%w: point at infinity", ErrInvalidPoint)
	}

	out := make([]byte, 0, 33+ChainCodeLen)
	out = append(out, compressPoint(x, y)...)
	out = append(out, childChainCode...)
	return out, nil
}

// addScalars computes the child scalar from the MAC left half and the parent
// scalar. Both operands, and the curve order itself, are read as signed
// little-endian two's-complement integers and reduced with a truncated
// (sign-of-dividend) remainder; the result is re-encoded the same way. The
// encoding must come back as exactly 32 bytes holding an in-range scalar or
// the derivation fails.
func addScalars(il, parent []byte) ([]byte, error) {
	sum := new(big.Int).Add(codec.SignedLE(il), codec.SignedLE(parent))
	sum.Rem(sum, curveOrderLE)

	childBytes := codec.SignedLEBytes(sum)
	if len(childBytes) != KeyLen {
		return nil, fmt.Errorf("%w: derived scalar encodes to %d bytes", ErrInvalidScalar, len(childBytes))
	}
	if err := validateScalar(childBytes); err != nil {
		return nil, err
	}
	return childBytes, nil
}

// compressPoint serializes an affine curve point in 33-byte compressed form.
func compressPoint(x, y *big.Int) []byte {
	out := make([]byte, 33)
	out[0] = 0x02 | byte(y.Bit(0))
	x.FillBytes(out[1:])
	return out
}

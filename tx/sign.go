package tx

import (
	"encoding/binary"
	"fmt"

	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"

	"github.com/hdwalletorg/libhdwallet-go/key"
)

// Sign signs every input with the given key under SIGHASH_ALL and returns
// the final serialized transaction as hex. Each input is signed over its own
// preimage: the transaction with only that input's script slot holding the
// locking script it spends, followed by the hash type as 4 little-endian
// bytes, double SHA-256 hashed.
func (t *Transaction) Sign(k *key.Key) (string, error) {
	if len(t.Inputs) == 0 {
		return "", ErrNoInputs
	}

	pubKey := k.PublicKey()
	for i, in := range t.Inputs {
		if len(in.PrevLockingScript) == 0 {
			return "", fmt.Errorf("%w: input %d", ErrMissingLockingScript, i)
		}

		preimage := t.serialize(i)
		preimage = binary.LittleEndian.AppendUint32(preimage, sighashAll)
		digest := hash.Sha256d(preimage)

		sig, err := k.SignData(digest)
		if err != nil {
			return "", fmt.Errorf("%w: input %d: %w", ErrSigningFailed, i, err)
		}

		in.SignatureScript, err = signatureScript(sig, pubKey)
		if err != nil {
			return "", err
		}
	}

	return t.Serialize(), nil
}

// Package tx builds, serializes, and signs raw pay-to-pubkey-hash Bitcoin
// transactions. Serialization is the classic pre-segwit wire format; signing
// is SIGHASH_ALL with a per-input digest.
package tx

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"

	"github.com/hdwalletorg/libhdwallet-go/codec"
)

const (
	// TxIDLen is the length of a transaction id.
	TxIDLen = 32

	// DefaultSequence is the final sequence number, disabling relative
	// locktime for the input.
	DefaultSequence = 0xffffffff

	// sighashAll is the only signature hash type produced here, appended
	// to the preimage as 4 little-endian bytes and to the signature as
	// a single byte.
	sighashAll = 0x01
)

// Input spends one output of a previous transaction. PrevTxID is kept and
// serialized exactly as given; callers working from display order should
// reverse it first with codec.ReverseByteOrder. PrevLockingScript is the
// script of the output being spent and only participates in signing.
type Input struct {
	PrevTxID          []byte
	PrevIndex         uint32
	SignatureScript   []byte
	PrevLockingScript []byte
	Sequence          uint32
}

// Output creates a value locked by a script.
type Output struct {
	Value         uint64
	LockingScript []byte
}

// Transaction is a raw transaction under construction. Version and lock time
// are explicit so builds are reproducible.
type Transaction struct {
	Version  uint32
	Inputs   []*Input
	Outputs  []*Output
	LockTime uint32
}

// NewTransaction creates an empty transaction with the given version and
// lock time.
func NewTransaction(version, lockTime uint32) *Transaction {
	return &Transaction{Version: version, LockTime: lockTime}
}

// AddInput appends an input spending output prevIndex of the transaction
// with id prevTxID (32 bytes, serialized order). The previous locking script
// is required later by Sign.
func (t *Transaction) AddInput(prevTxID []byte, prevIndex uint32, prevLockingScript []byte) error {
	if len(prevTxID) != TxIDLen {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidTxID, len(prevTxID))
	}

	txid := make([]byte, TxIDLen)
	copy(txid, prevTxID)
	t.Inputs = append(t.Inputs, &Input{
		PrevTxID:          txid,
		PrevIndex:         prevIndex,
		PrevLockingScript: prevLockingScript,
		Sequence:          DefaultSequence,
	})
	return nil
}

// AddOutput appends an output.
func (t *Transaction) AddOutput(out *Output) {
	t.Outputs = append(t.Outputs, out)
}

// serialize renders the wire bytes. With signingIndex < 0 every input
// carries its signature script; otherwise only input signingIndex carries a
// script, namely the locking script of the output it spends.
func (t *Transaction) serialize(signingIndex int) []byte {
	buf := make([]byte, 0, 256)
	buf = binary.LittleEndian.AppendUint32(buf, t.Version)

	buf = appendVarInt(buf, uint64(len(t.Inputs)))
	for i, in := range t.Inputs {
		buf = append(buf, in.PrevTxID...)
		buf = binary.LittleEndian.AppendUint32(buf, in.PrevIndex)

		var script []byte
		switch {
		case signingIndex < 0:
			script = in.SignatureScript
		case signingIndex == i:
			script = in.PrevLockingScript
		}
		buf = appendVarInt(buf, uint64(len(script)))
		buf = append(buf, script...)

		buf = binary.LittleEndian.AppendUint32(buf, in.Sequence)
	}

	buf = appendVarInt(buf, uint64(len(t.Outputs)))
	for _, out := range t.Outputs {
		buf = binary.LittleEndian.AppendUint64(buf, out.Value)
		buf = appendVarInt(buf, uint64(len(out.LockingScript)))
		buf = append(buf, out.LockingScript...)
	}

	buf = binary.LittleEndian.AppendUint32(buf, t.LockTime)
	return buf
}

// Serialize returns the transaction wire bytes as a hex string.
func (t *Transaction) Serialize() string {
	return hex.EncodeToString(t.serialize(-1))
}

// PreSignSerialize returns the signing serialization for input i: every
// script slot empty except input i's, which holds the locking script of the
// output it spends.
func (t *Transaction) PreSignSerialize(i int) (string, error) {
	if i < 0 || i >= len(t.Inputs) {
		return "", fmt.Errorf("%w: %d of %d", ErrInvalidInputIndex, i, len(t.Inputs))
	}
	if len(t.Inputs[i].PrevLockingScript) == 0 {
		return "", fmt.Errorf("%w: input %d", ErrMissingLockingScript, i)
	}
	return hex.EncodeToString(t.serialize(i)), nil
}

// TxID returns the transaction id of the current serialization: the double
// SHA-256 of the wire bytes in display (reversed) byte order.
func (t *Transaction) TxID() (string, error) {
	digest := hash.Sha256d(t.serialize(-1))
	return codec.ReverseByteOrder(hex.EncodeToString(digest))
}

package tx

import (
	"fmt"

	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/bsv-blockchain/go-sdk/script"

	"github.com/hdwalletorg/libhdwallet-go/key"
)

// P2PKHLockingScript builds the standard pay-to-pubkey-hash locking script
// for a serialized public key:
//
//	OP_DUP OP_HASH160 <Hash160(pubkey)> OP_EQUALVERIFY OP_CHECKSIG
func P2PKHLockingScript(pubKey []byte) ([]byte, error) {
	s := &script.Script{}
	if err := s.AppendOpcodes(script.OpDUP, script.OpHASH160); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	if err := s.AppendPushData(hash.Hash160(pubKey)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	if err := s.AppendOpcodes(script.OpEQUALVERIFY, script.OpCHECKSIG); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	return *s, nil
}

// NewP2PKHOutput creates an output paying value satoshis to the given key's
// public key hash.
func NewP2PKHOutput(k *key.Key, value uint64) (*Output, error) {
	locking, err := P2PKHLockingScript(k.PublicKey())
	if err != nil {
		return nil, err
	}
	return &Output{Value: value, LockingScript: locking}, nil
}

// signatureScript builds the unlocking script for a signed P2PKH input: the
// DER signature with the hash type byte appended, then the public key, each
// as a single push.
func signatureScript(sig, pubKey []byte) ([]byte, error) {
	s := &script.Script{}
	if err := s.AppendPushData(append(sig, sighashAll)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	if err := s.AppendPushData(pubKey); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	return *s, nil
}

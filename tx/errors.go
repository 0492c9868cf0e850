package tx

import "errors"

var (
	// ErrInvalidTxID indicates a previous transaction id is not 32 bytes.
	ErrInvalidTxID = errors.New("tx: previous txid must be 32 bytes")

	// ErrInvalidInputIndex indicates an input index outside the transaction.
	ErrInvalidInputIndex = errors.New("tx: input index out of range")

	// ErrMissingLockingScript indicates an input has no previous locking
	// script to sign against.
	ErrMissingLockingScript = errors.New("tx: input has no previous locking script")

	// ErrNoInputs indicates signing was attempted on a transaction with no
	// inputs.
	ErrNoInputs = errors.New("tx: transaction has no inputs")

	// ErrScriptBuild indicates script construction failed.
	ErrScriptBuild = errors.New("tx: script build failed")

	// ErrSigningFailed indicates transaction signing failed.
	ErrSigningFailed = errors.New("tx: signing failed")
)

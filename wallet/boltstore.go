package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var (
	bucketWallet = []byte("wallet")
	keyState     = []byte("state")
)

// BoltStore persists wallet state in a bbolt database. The document is the
// same JSON as FileStore writes, kept under a single bucket key so saves are
// atomic.
type BoltStore struct {
	db         *bbolt.DB
	passphrase string
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath. The parent
// directory is created if it does not exist. A non-empty passphrase enables
// Argon2id + AES-256-GCM encryption of the stored document.
func OpenBoltStore(dbPath, passphrase string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("wallet: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("wallet: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWallet)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("wallet: create bucket: %w", err)
	}

	return &BoltStore{db: db, passphrase: passphrase}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Save writes the wallet state under the single state key.
func (s *BoltStore) Save(state *State) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("wallet: encode state: %w", err)
	}

	if s.passphrase != "" {
		doc, err = encryptPayload(doc, s.passphrase)
		if err != nil {
			return err
		}
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketWallet).Put(keyState, doc); err != nil {
			return fmt.Errorf("wallet: put state: %w", err)
		}
		return nil
	})
}

// Load reads the wallet state from the database.
func (s *BoltStore) Load() (*State, error) {
	var doc []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketWallet).Get(keyState)
		if data == nil {
			return ErrNoState
		}
		doc = make([]byte, len(data))
		copy(doc, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.passphrase != "" {
		doc, err = decryptPayload(doc, s.passphrase)
		if err != nil {
			return nil, err
		}
	}

	var state State
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, fmt.Errorf("wallet: decode state: %w", err)
	}
	if state.Version != StateVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, state.Version)
	}
	return &state, nil
}

package wallet

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hdwalletorg/libhdwallet-go/key"
)

// StateVersion is the current wallet document format version.
const StateVersion = 1

// State is the serialized form of a wallet: the tree nodes with their parent
// links plus the derivation counters.
type State struct {
	Version            int         `json:"version"`
	Network            key.Network `json:"network"`
	CompressPublicKeys bool        `json:"compress_public_keys"`
	NextHardenedIndex  uint64      `json:"next_hardened_index"`
	NextNormalIndex    uint64      `json:"next_normal_index"`
	Nodes              []NodeState `json:"nodes"`
}

// NodeState is one serialized tree node. Nodes appear in arena order, so a
// parent index always refers to an earlier entry.
type NodeState struct {
	Label     string   `json:"label,omitempty"`
	Parent    *int     `json:"parent,omitempty"`
	Type      KeyType  `json:"type"`
	Index     *uint64  `json:"index,omitempty"`
	Key       *key.Key `json:"key"`
	PublicKey string   `json:"public_key"`
}

// Store persists wallet state.
type Store interface {
	// Save writes the wallet state, replacing any previous state.
	Save(state *State) error

	// Load reads the last saved wallet state.
	Load() (*State, error)
}

// envelope wraps an encrypted wallet document on disk.
type envelope struct {
	Version   int    `json:"version"`
	Encrypted bool   `json:"encrypted"`
	Payload   string `json:"payload"`
}

// FileStore persists wallet state as a JSON file. With a passphrase set the
// document is encrypted with Argon2id + AES-256-GCM and wrapped in a small
// envelope; without one it is written as plain JSON.
type FileStore struct {
	path       string
	passphrase string
}

// Compile-time interface check.
var _ Store = (*FileStore)(nil)

// NewFileStore creates a plaintext JSON file store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewEncryptedFileStore creates a file store that encrypts the document with
// the given passphrase.
func NewEncryptedFileStore(path, passphrase string) *FileStore {
	return &FileStore{path: path, passphrase: passphrase}
}

// Save writes the wallet state to the file, creating parent directories as
// needed. The file is written with 0600 permissions.
func (s *FileStore) Save(state *State) error {
	doc, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("wallet: encode state: %w", err)
	}

	if s.passphrase != "" {
		encrypted, err := encryptPayload(doc, s.passphrase)
		if err != nil {
			return err
		}
		doc, err = json.MarshalIndent(envelope{
			Version:   StateVersion,
			Encrypted: true,
			Payload:   base64.StdEncoding.EncodeToString(encrypted),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("wallet: encode envelope: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("wallet: create directory: %w", err)
	}
	if err := os.WriteFile(s.path, doc, 0600); err != nil {
		return fmt.Errorf("wallet: write state file: %w", err)
	}
	return nil
}

// Load reads and, if necessary, decrypts the wallet state file.
func (s *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("wallet: read state file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Encrypted {
		encrypted, err := base64.StdEncoding.DecodeString(env.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: bad payload encoding", ErrDecryptionFailed)
		}
		data, err = decryptPayload(encrypted, s.passphrase)
		if err != nil {
			return nil, err
		}
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("wallet: decode state: %w", err)
	}
	if state.Version != StateVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, state.Version)
	}
	return &state, nil
}

// MemStore is an in-memory Store for testing. It counts saves so tests can
// assert flush behavior.
type MemStore struct {
	mu        sync.Mutex
	state     *State
	SaveCount int
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Save stores a deep copy of the state.
func (s *MemStore) Save(state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("wallet: encode state: %w", err)
	}
	var clone State
	if err := json.Unmarshal(data, &clone); err != nil {
		return fmt.Errorf("wallet: clone state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &clone
	s.SaveCount++
	return nil
}

// Load returns the last saved state.
func (s *MemStore) Load() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, ErrNoState
	}
	return s.state, nil
}

// nodeState serializes an arena node.
func nodeState(n *Node) NodeState {
	return NodeState{
		Label:     n.Label,
		Parent:    n.Parent,
		Type:      n.KeyPair.Type,
		Index:     n.KeyPair.Index,
		Key:       n.KeyPair.PrivateKey,
		PublicKey: hex.EncodeToString(n.KeyPair.PublicKey),
	}
}

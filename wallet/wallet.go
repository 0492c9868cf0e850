// Package wallet maintains a tree of hierarchical-deterministic keys in an
// append-only arena and persists it through pluggable stores. A wallet is
// initialized from a fresh BIP39 mnemonic with one master key, one hardened
// child, and one normal grandchild; further children can be derived under
// any node.
package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/hdwalletorg/libhdwallet-go/key"
)

// Wallet is a key tree bound to a persistence store. Mutating operations
// flush the full state through the store.
type Wallet struct {
	network            key.Network
	compressPublicKeys bool
	store              Store
	arena              arena

	// Derivation counters. Hardened indices count up from the bottom of
	// the hardened window; normal indices from 1.
	nextHardenedIndex uint64
	nextNormalIndex   uint64
}

// New creates an empty wallet bound to a store. Call Init to populate it or
// Load to restore a persisted one.
func New(network key.Network, compressPublicKeys bool, store Store) *Wallet {
	return &Wallet{
		network:            network,
		compressPublicKeys: compressPublicKeys,
		store:              store,
		nextHardenedIndex:  key.MinHardenedIndex,
		nextNormalIndex:    1,
	}
}

// Init generates a fresh 12-word mnemonic and builds the initial tree: the
// master key as root, a hardened child under it, and a normal child under
// that. State is flushed after every insertion. The mnemonic is returned for
// the caller to back up; it is never persisted.
func (w *Wallet) Init() (string, error) {
	mnemonic, err := GenerateMnemonic(Mnemonic12Words)
	if err != nil {
		return "", err
	}
	if err := w.InitFromMnemonic(mnemonic); err != nil {
		return "", err
	}
	return mnemonic, nil
}

// InitFromMnemonic builds the initial tree from an existing mnemonic. Used
// to restore a wallet whose state file is gone but whose mnemonic survived.
func (w *Wallet) InitFromMnemonic(mnemonic string) error {
	master, err := key.New(mnemonic, w.network, w.compressPublicKeys)
	if err != nil {
		return fmt.Errorf("wallet: master key: %w", err)
	}

	rootID, err := w.Insert(NewKeyPair(master, Master, nil), "master", nil)
	if err != nil {
		return err
	}

	hardenedID, err := w.NewHardenedChild(rootID, "hardened account")
	if err != nil {
		return err
	}

	if _, err := w.NewNormalChild(hardenedID, "receive key"); err != nil {
		return err
	}
	return nil
}

// Insert validates a key pair and appends it to the tree under parent. A nil
// parent inserts the root; ErrRootExists if one is already present, and
// ErrUnknownParent if the parent id is not in the arena. The new node id is
// returned and the state is flushed; a failed flush discards the node so the
// tree never drifts ahead of its store.
func (w *Wallet) Insert(kp *KeyPair, label string, parent *int) (int, error) {
	if err := kp.Validate(); err != nil {
		return 0, err
	}

	id, err := w.arena.insert(kp, label, parent)
	if err != nil {
		return 0, err
	}

	if err := w.Flush(); err != nil {
		w.arena.nodes = w.arena.nodes[:id]
		return 0, err
	}
	return id, nil
}

// NewHardenedChild derives a hardened child of the given node at the next
// hardened index and inserts it. The counter is consumed before the insert
// flushes, so the persisted state never re-issues the index; a failed insert
// rolls it back.
func (w *Wallet) NewHardenedChild(parent int, label string) (int, error) {
	node := w.arena.node(parent)
	if node == nil {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownParent, parent)
	}

	index := w.nextHardenedIndex
	child, err := node.KeyPair.PrivateKey.DeriveChildPrivateKey(index, key.Hardened)
	if err != nil {
		return 0, fmt.Errorf("wallet: derive hardened child: %w", err)
	}

	w.nextHardenedIndex++
	id, err := w.Insert(NewKeyPair(child, Hardened, &index), label, &parent)
	if err != nil {
		w.nextHardenedIndex--
		return 0, err
	}
	return id, nil
}

// NewNormalChild derives a normal child of the given node at the next normal
// index and inserts it. The counter is consumed before the insert flushes,
// so the persisted state never re-issues the index; a failed insert rolls it
// back.
func (w *Wallet) NewNormalChild(parent int, label string) (int, error) {
	node := w.arena.node(parent)
	if node == nil {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownParent, parent)
	}

	index := w.nextNormalIndex
	child, err := node.KeyPair.PrivateKey.DeriveChildPrivateKey(index, key.Normal)
	if err != nil {
		return 0, fmt.Errorf("wallet: derive normal child: %w", err)
	}

	w.nextNormalIndex++
	id, err := w.Insert(NewKeyPair(child, Normal, &index), label, &parent)
	if err != nil {
		w.nextNormalIndex--
		return 0, err
	}
	return id, nil
}

// Master returns the root key pair.
func (w *Wallet) Master() (*KeyPair, error) {
	root := w.arena.root()
	if root == nil {
		return nil, ErrNoMaster
	}
	return root.KeyPair, nil
}

// Node returns the node with the given id, or nil if out of range.
func (w *Wallet) Node(id int) *Node {
	return w.arena.node(id)
}

// Len returns the number of keys in the tree.
func (w *Wallet) Len() int {
	return w.arena.len()
}

// Addresses returns the address of every node in insertion order. The first
// failure aborts the listing with the offending key identified by hex.
func (w *Wallet) Addresses() ([]string, error) {
	out := make([]string, 0, w.arena.len())
	for _, n := range w.arena.nodes {
		addr, err := n.KeyPair.Address()
		if err != nil {
			return nil, fmt.Errorf("wallet: address for key %s: %w", n.KeyPair.PrivateKey.Hex(), err)
		}
		out = append(out, addr)
	}
	return out, nil
}

// GetAddress finds the key pair paying to the given address by breadth-first
// search from the root.
func (w *Wallet) GetAddress(address string) (*KeyPair, error) {
	root := w.arena.root()
	if root == nil {
		return nil, ErrNoMaster
	}

	queue := []int{root.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node := w.arena.node(id)
		addr, err := node.KeyPair.Address()
		if err != nil {
			return nil, fmt.Errorf("wallet: address for key %s: %w", node.KeyPair.PrivateKey.Hex(), err)
		}
		if addr == address {
			return node.KeyPair, nil
		}
		queue = append(queue, w.arena.children(id)...)
	}
	return nil, fmt.Errorf("%w: %s", ErrAddressNotFound, address)
}

// Flush serializes the wallet and writes it through the store.
func (w *Wallet) Flush() error {
	state := &State{
		Version:            StateVersion,
		Network:            w.network,
		CompressPublicKeys: w.compressPublicKeys,
		NextHardenedIndex:  w.nextHardenedIndex,
		NextNormalIndex:    w.nextNormalIndex,
		Nodes:              make([]NodeState, 0, w.arena.len()),
	}
	for _, n := range w.arena.nodes {
		state.Nodes = append(state.Nodes, nodeState(n))
	}
	return w.store.Save(state)
}

// Load restores a wallet from its store, re-validating every key pair and
// the arena invariants as nodes are re-inserted.
func Load(store Store) (*Wallet, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}

	w := &Wallet{
		network:            state.Network,
		compressPublicKeys: state.CompressPublicKeys,
		store:              store,
		nextHardenedIndex:  state.NextHardenedIndex,
		nextNormalIndex:    state.NextNormalIndex,
	}

	for i, ns := range state.Nodes {
		pub, err := hex.DecodeString(ns.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("wallet: node %d public key: %w", i, err)
		}

		kp := &KeyPair{
			PrivateKey: ns.Key,
			PublicKey:  pub,
			Type:       ns.Type,
			Index:      ns.Index,
		}
		if err := kp.Validate(); err != nil {
			return nil, fmt.Errorf("wallet: node %d: %w", i, err)
		}

		if _, err := w.arena.insert(kp, ns.Label, ns.Parent); err != nil {
			return nil, fmt.Errorf("wallet: node %d: %w", i, err)
		}
	}
	return w, nil
}

// FromWalletFile restores a wallet from a plaintext JSON state file.
func FromWalletFile(path string) (*Wallet, error) {
	return Load(NewFileStore(path))
}

// FromEncryptedWalletFile restores a wallet from an encrypted state file.
func FromEncryptedWalletFile(path, passphrase string) (*Wallet, error) {
	return Load(NewEncryptedFileStore(path, passphrase))
}

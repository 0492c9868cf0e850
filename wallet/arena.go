package wallet

import "fmt"

// Node is one entry in the key-tree arena. The parent pointer is an arena
// index; the root has none.
type Node struct {
	ID      int
	KeyPair *KeyPair
	Label   string
	Parent  *int
}

// arena is an append-only tree of key nodes. Node ids are slice indices, so
// a parent always has a smaller id than its children and the structure never
// needs rebalancing or deletion.
type arena struct {
	nodes []*Node
}

// insert appends a node and returns its id. A nil parent makes the node the
// root; only one root may exist, and a non-nil parent must already be in the
// arena.
func (a *arena) insert(kp *KeyPair, label string, parent *int) (int, error) {
	if parent == nil {
		if len(a.nodes) > 0 {
			return 0, ErrRootExists
		}
	} else if *parent < 0 || *parent >= len(a.nodes) {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownParent, *parent)
	}

	id := len(a.nodes)
	a.nodes = append(a.nodes, &Node{
		ID:      id,
		KeyPair: kp,
		Label:   label,
		Parent:  parent,
	})
	return id, nil
}

// root returns the root node, or nil for an empty arena.
func (a *arena) root() *Node {
	if len(a.nodes) == 0 {
		return nil
	}
	return a.nodes[0]
}

// node returns the node with the given id, or nil if out of range.
func (a *arena) node(id int) *Node {
	if id < 0 || id >= len(a.nodes) {
		return nil
	}
	return a.nodes[id]
}

// children returns the ids of the direct children of id, in insertion order.
func (a *arena) children(id int) []int {
	var out []int
	for _, n := range a.nodes {
		if n.Parent != nil && *n.Parent == id {
			out = append(out, n.ID)
		}
	}
	return out
}

// len returns the number of nodes in the arena.
func (a *arena) len() int {
	return len(a.nodes)
}

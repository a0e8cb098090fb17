package avl

import (
	"fmt"
)

// Tree is a height-balanced binary search tree over distinct keys of type K,
// augmented with subtree summaries.
//
// A tree created by
//
//	Tree[int]{}
//
// is a valid empty tree with the zero Config.
//
// Trees are mutable and not safe for concurrent use. Operations which
// restructure the tree (including Sum) do not preserve node identity.
type Tree[K Key] struct {
	cfg  Config
	root *node[K]
}

// New creates an empty tree.
func New[K Key](cfg Config) *Tree[K] {
	return &Tree[K]{cfg: cfg}
}

// FromSorted creates a perfectly balanced tree from strictly ascending keys
// in O(n).
func FromSorted[K Key](cfg Config, keys []K) (*Tree[K], error) {
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return nil, fmt.Errorf("%w: key %d at index %d does not exceed its predecessor",
				ErrUnsortedKeys, keys[i], i)
		}
	}
	t := New[K](cfg)
	t.root = buildBalanced(keys)
	t.verify("FromSorted")
	return t, nil
}

func buildBalanced[K Key](keys []K) *node[K] {
	if len(keys) == 0 {
		return nil
	}
	mid := len(keys) / 2
	n := makeNode(keys[mid])
	n.left = buildBalanced(keys[:mid])
	n.right = buildBalanced(keys[mid+1:])
	update(n)
	return n
}

// Config returns a copy of the tree configuration.
func (t *Tree[K]) Config() Config {
	if t == nil {
		return Config{}
	}
	return t.cfg
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return summary(t.root).Count
}

// Height returns the tree height, where 0 means empty and 1 means a single node.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

// Summary returns the summary of the whole tree.
func (t *Tree[K]) Summary() Summary {
	if t == nil {
		return Summary{}
	}
	return summary(t.root)
}

// Contains reports whether key is present.
func (t *Tree[K]) Contains(key K) bool {
	if t == nil {
		return false
	}
	return contains(t.root, key)
}

func contains[K Key](n *node[K], key K) bool {
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key, or false for an empty tree.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return minNode(t.root).key, true
}

// Max returns the largest key, or false for an empty tree.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return maxNode(t.root).key, true
}

// Insert adds key to the tree and reports whether it was added.
//
// Inserting a key which is already present leaves the tree untouched and
// returns false.
func (t *Tree[K]) Insert(key K) bool {
	assert(t != nil, "Insert called on nil tree")
	var inserted bool
	t.root, inserted = insert(t.root, key)
	if inserted {
		t.verify("Insert")
	}
	return inserted
}

// insert adds key to subtree n and returns the new subtree root.
//
// Ancestors of the new node are updated and rebalanced on the way back up.
func insert[K Key](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return makeNode(key), true
	}
	var inserted bool
	switch {
	case key < n.key:
		n.left, inserted = insert(n.left, key)
	case key > n.key:
		n.right, inserted = insert(n.right, key)
	default:
		return n, false
	}
	if !inserted {
		return n, false
	}
	return rebalance(n), true
}

// Remove deletes key from the tree and reports whether it was present.
//
// Removing an absent key is a no-op.
func (t *Tree[K]) Remove(key K) bool {
	if t == nil {
		return false
	}
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.verify("Remove")
	}
	return removed
}

// remove deletes key from subtree n and returns the new subtree root.
//
// A node with two children takes over the key of its predecessor, which is
// then removed from the left subtree; the node itself stays linked.
func remove[K Key](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case key < n.key:
		n.left, removed = remove(n.left, key)
	case key > n.key:
		n.right, removed = remove(n.right, key)
	case n.left != nil && n.right != nil:
		n.key = maxNode(n.left).key
		n.left, removed = remove(n.left, n.key)
		assert(removed, "remove lost the predecessor key")
	default:
		left, right := n.detach()
		if left != nil {
			return left, true
		}
		return right, true
	}
	if !removed {
		return n, false
	}
	return rebalance(n), true
}

// Clear removes all keys, releasing every node bottom-up. It returns the
// number of released nodes.
func (t *Tree[K]) Clear() int {
	if t == nil {
		return 0
	}
	root := t.root
	t.root = nil
	return release(root)
}

// verify runs the invariant checker if configured to do so.
func (t *Tree[K]) verify(op string) {
	if !t.cfg.CheckInvariants {
		return
	}
	if err := t.Check(); err != nil {
		panic(fmt.Sprintf("avl: %s broke tree invariants: %v", op, err))
	}
}

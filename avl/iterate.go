package avl

import "iter"

// ForEach walks keys in ascending order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachNode(t.root, fn)
}

func forEachNode[K Key](n *node[K], fn func(key K) bool) bool {
	if n == nil {
		return true
	}
	return forEachNode(n.left, fn) && fn(n.key) && forEachNode(n.right, fn)
}

// Keys returns an iterator over all keys in ascending order.
func (t *Tree[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(yield)
	}
}

// Side tells which child slot of its parent a node occupies.
type Side int8

// Child slots. The root has no parent and is reported as Root.
const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "root"
}

// NodeInfo describes one node during a structural walk.
type NodeInfo[K Key] struct {
	ID      int // pre-order number, starting with 1 for the root
	Parent  int // ID of the parent, 0 for the root
	Side    Side
	Depth   int // 0 for the root
	Key     K
	Height  int
	Summary Summary
	// HasLeft and HasRight tell whether the node has the respective child.
	HasLeft, HasRight bool
}

// Walk visits every node once in pre-order (node, left subtree, right
// subtree), without modifying the tree. It is meant for diagnostic output.
//
// Walking stops early if fn returns false.
func (t *Tree[K]) Walk(fn func(info NodeInfo[K]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	var nextID int
	var walk func(n *node[K], parent int, side Side, depth int) bool
	walk = func(n *node[K], parent int, side Side, depth int) bool {
		if n == nil {
			return true
		}
		nextID++
		info := NodeInfo[K]{
			ID:       nextID,
			Parent:   parent,
			Side:     side,
			Depth:    depth,
			Key:      n.key,
			Height:   n.height,
			Summary:  n.sum,
			HasLeft:  n.left != nil,
			HasRight: n.right != nil,
		}
		if !fn(info) {
			return false
		}
		return walk(n.left, info.ID, Left, depth+1) && walk(n.right, info.ID, Right, depth+1)
	}
	walk(t.root, 0, Root, 0)
}

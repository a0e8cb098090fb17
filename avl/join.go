package avl

import "fmt"

// Split divides the tree at pivot into a tree of all keys < pivot and a tree
// of all keys > pivot. found reports whether pivot itself was present; it is
// contained in neither result.
//
// Split consumes the receiver, which is left empty. Both results inherit its
// configuration.
func (t *Tree[K]) Split(pivot K) (lo, hi *Tree[K], found bool) {
	assert(t != nil, "Split called on nil tree")
	l, h, found := split(t.root, pivot)
	t.root = nil
	lo = &Tree[K]{cfg: t.cfg, root: l}
	hi = &Tree[K]{cfg: t.cfg, root: h}
	lo.verify("Split")
	hi.verify("Split")
	return lo, hi, found
}

// Join appends all keys of other to t. Every key of t must be smaller than
// every key of other. other is left empty.
//
// With Config.CheckOrder set, overlapping trees are rejected with
// ErrOverlappingRanges and neither tree is modified. Without it, the ordering
// precondition is the caller's responsibility.
func (t *Tree[K]) Join(other *Tree[K]) error {
	assert(t != nil, "Join called on nil tree")
	if other == nil || other.root == nil {
		return nil
	}
	if other == t {
		return fmt.Errorf("%w: cannot join a tree with itself", ErrOverlappingRanges)
	}
	if t.cfg.CheckOrder {
		if err := checkOrdered(t.root, other.root); err != nil {
			return err
		}
	}
	t.root = join(t.root, other.root)
	other.root = nil
	t.verify("Join")
	return nil
}

// JoinWithKey fuses t, key and other into t, using key as the pivot. Every key
// of t must be smaller than key and key must be smaller than every key of
// other. other is left empty. Ordering is checked as for Join.
func (t *Tree[K]) JoinWithKey(key K, other *Tree[K]) error {
	assert(t != nil, "JoinWithKey called on nil tree")
	if other == t {
		if t.root != nil {
			return fmt.Errorf("%w: cannot join a tree with itself", ErrOverlappingRanges)
		}
		other = nil
	}
	var right *node[K]
	if other != nil {
		right = other.root
	}
	if t.cfg.CheckOrder {
		pivot := makeNode(key)
		if err := checkOrdered(t.root, pivot); err != nil {
			return err
		}
		if err := checkOrdered(pivot, right); err != nil {
			return err
		}
	}
	t.root = joinWithRoot(t.root, right, makeNode(key))
	if other != nil {
		other.root = nil
	}
	t.verify("JoinWithKey")
	return nil
}

// checkOrdered compares the largest key of v1 with the smallest key of v2 in
// O(log n).
func checkOrdered[K Key](v1, v2 *node[K]) error {
	if v1 == nil || v2 == nil {
		return nil
	}
	hi, lo := maxNode(v1).key, minNode(v2).key
	if hi >= lo {
		return fmt.Errorf("%w: left maximum %d >= right minimum %d", ErrOverlappingRanges, hi, lo)
	}
	return nil
}

// split partitions subtree n into keys < pivot and keys > pivot.
//
// The child on the pivot's side is split recursively; the visited node is then
// re-fused with its untouched child and the inner half by joinWithRoot, so both
// results are balanced. A node equal to pivot is dropped.
func split[K Key](n *node[K], pivot K) (lo, hi *node[K], found bool) {
	if n == nil {
		return nil, nil, false
	}
	left, right := n.detach()
	switch {
	case pivot < n.key:
		l, h, found := split(left, pivot)
		return l, joinWithRoot(h, right, n), found
	case pivot > n.key:
		l, h, found := split(right, pivot)
		return joinWithRoot(left, l, n), h, found
	}
	return left, right, true
}

// joinWithRoot fuses v1, root and v2 into one balanced tree and returns its
// root. All keys of v1 must be smaller than root.key, which must be smaller
// than all keys of v2. root must be detached.
//
// If the heights of v1 and v2 differ by at most 1, root simply adopts both.
// Otherwise the taller tree's inner spine is descended until the heights
// match, and the path back up is rebalanced. Cost is O(|h(v1) - h(v2)|).
func joinWithRoot[K Key](v1, v2, root *node[K]) *node[K] {
	assert(root != nil && root.left == nil && root.right == nil,
		"joinWithRoot requires a detached root")
	h1, h2 := height(v1), height(v2)
	switch {
	case h1 > h2+1:
		v1.right = joinWithRoot(v1.right, v2, root)
		return rebalance(v1)
	case h2 > h1+1:
		v2.left = joinWithRoot(v1, v2.left, root)
		return rebalance(v2)
	}
	root.left, root.right = v1, v2
	update(root)
	return root
}

// join fuses v1 and v2, where all keys of v1 are smaller than all keys of v2.
// The maximum of v1 is removed and re-materialized as the pivot.
func join[K Key](v1, v2 *node[K]) *node[K] {
	if v1 == nil {
		return v2
	}
	if v2 == nil {
		return v1
	}
	maxKey := maxNode(v1).key
	v1, _ = remove(v1, maxKey)
	return joinWithRoot(v1, v2, makeNode(maxKey))
}

// --- Range queries ---------------------------------------------------------

// Sum returns the sum of all keys k with l <= k <= r. It returns 0 for an
// empty range, including l > r.
//
// Sums of int8, int16 and int32 keys cannot overflow for any tree that fits
// into memory. Sums of 64-bit keys wrap around; use CheckedSum to detect this.
func (t *Tree[K]) Sum(l, r K) int64 {
	return t.RangeSummary(l, r).Sum
}

// CheckedSum is like Sum, but returns an error wrapping ErrSumOverflow if the
// sum does not fit into an int64. The wrapped-around sum is returned anyway.
func (t *Tree[K]) CheckedSum(l, r K) (int64, error) {
	s := t.RangeSummary(l, r)
	if s.Overflows() {
		return s.Sum, fmt.Errorf("%w: sum of %d keys in [%d, %d]", ErrSumOverflow, s.Count, l, r)
	}
	return s.Sum, nil
}

// Count returns the number of keys k with l <= k <= r.
func (t *Tree[K]) Count(l, r K) int {
	return t.RangeSummary(l, r).Count
}

// RangeSummary returns the summary of all keys k with l <= k <= r.
//
// The tree is split at l-1 and r+1, the summary of the middle part is read
// and the parts are joined again. Keys l-1 and r+1, if present, are dropped
// by the splits and re-inserted as join pivots. The key set is unchanged
// afterwards, the node structure is not.
func (t *Tree[K]) RangeSummary(l, r K) Summary {
	if t.IsEmpty() || l > r {
		return Summary{}
	}
	// l-1 wraps around if l is the smallest value of K, r+1 likewise; no key
	// lies beyond such a bound, so the corresponding split is skipped.
	splitBelow, splitAbove := l-1 < l, r+1 > r
	hasBelow := splitBelow && contains(t.root, l-1)
	hasAbove := splitAbove && contains(t.root, r+1)

	var below, target, above *node[K]
	target, t.root = t.root, nil
	if splitBelow {
		below, target, _ = split(target, l-1)
	}
	if splitAbove {
		target, above, _ = split(target, r+1)
	}
	result := summary(target)

	var upper *node[K]
	if hasAbove {
		upper = joinWithRoot(target, above, makeNode(r+1))
	} else {
		upper = join(target, above)
	}
	if hasBelow {
		t.root = joinWithRoot(below, upper, makeNode(l-1))
	} else {
		t.root = join(below, upper)
	}
	t.verify("RangeSummary")
	return result
}

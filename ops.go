package sumtree

import "github.com/npillmayer/sumtree/avl"

// Split divides a set at pivot into the set of elements < pivot and the set
// of elements > pivot. found reports whether pivot itself was an element; it
// is part of neither result.
//
// Split consumes set, which is left empty. Both results share its options.
func Split[K avl.Key](set *Set[K], pivot K) (lo, hi *Set[K], found bool) {
	if set == nil {
		return &Set[K]{}, &Set[K]{}, false
	}
	l, h, found := set.engine().Split(pivot)
	return setFromTree(l), setFromTree(h), found
}

// Join fuses lo and hi into a new set. Every element of lo must be smaller
// than every element of hi; with WithOrderChecks set on lo, overlapping sets
// are rejected and neither input is modified. Otherwise ordering is the
// caller's responsibility.
//
// On success, Join consumes both inputs, which are left empty.
func Join[K avl.Key](lo, hi *Set[K]) (*Set[K], error) {
	if lo == nil || hi == nil {
		return nil, ErrIllegalArguments
	}
	tree := lo.engine()
	if err := tree.Join(hi.tree); err != nil {
		T().Infof("sumtree: join rejected: %v", err)
		return nil, err
	}
	lo.tree = nil
	return setFromTree(tree), nil
}

// JoinWithKey fuses lo, key and hi into a new set, where every element of lo
// is smaller than key and key is smaller than every element of hi. Ordering
// is checked as for Join.
func JoinWithKey[K avl.Key](lo *Set[K], key K, hi *Set[K]) (*Set[K], error) {
	if lo == nil || hi == nil {
		return nil, ErrIllegalArguments
	}
	if lo == hi && !lo.IsEmpty() {
		return nil, ErrIllegalArguments
	}
	tree := lo.engine()
	var other *avl.Tree[K]
	if hi != lo {
		other = hi.tree
	}
	if err := tree.JoinWithKey(key, other); err != nil {
		T().Infof("sumtree: join rejected: %v", err)
		return nil, err
	}
	lo.tree = nil
	return setFromTree(tree), nil
}

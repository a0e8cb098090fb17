package avl

// At returns the key at position index in ascending key order.
func (t *Tree[K]) At(index int) (K, error) {
	var zero K
	if t.IsEmpty() {
		return zero, ErrIndexOutOfBounds
	}
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	return atNode(t.root, index), nil
}

func atNode[K Key](n *node[K], index int) K {
	for n != nil {
		leftCount := summary(n.left).Count
		switch {
		case index < leftCount:
			n = n.left
		case index == leftCount:
			return n.key
		default:
			index -= leftCount + 1
			n = n.right
		}
	}
	assert(false, "atNode index routing exceeded subtree size")
	var zero K
	return zero
}

// Rank returns the number of keys smaller than key. key need not be present.
func (t *Tree[K]) Rank(key K) int {
	if t == nil {
		return 0
	}
	rank := 0
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			rank += summary(n.left).Count + 1
			n = n.right
		default:
			return rank + summary(n.left).Count
		}
	}
	return rank
}

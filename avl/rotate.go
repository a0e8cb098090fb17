package avl

// Rotations take an owned subtree and return the new subtree root. Nodes whose
// children change are updated innermost first.

// rotateLeft turns (x a (z b c)) into (z (x a b) c).
func rotateLeft[K Key](x *node[K]) *node[K] {
	z := x.right
	assert(z != nil, "rotateLeft requires a right child")
	x.right = z.left
	z.left = x
	update(x)
	update(z)
	return z
}

// rotateRight turns (x (z a b) c) into (z a (x b c)).
func rotateRight[K Key](x *node[K]) *node[K] {
	z := x.left
	assert(z != nil, "rotateRight requires a left child")
	x.left = z.right
	z.right = x
	update(x)
	update(z)
	return z
}

// rotateRightLeft turns (x a (z (y b c) d)) into (y (x a b) (z c d)).
func rotateRightLeft[K Key](x *node[K]) *node[K] {
	z := x.right
	assert(z != nil && z.left != nil, "rotateRightLeft requires a right-left grandchild")
	y := z.left
	z.left = y.right
	y.right = z
	x.right = y.left
	y.left = x
	update(x)
	update(z)
	update(y)
	return y
}

// rotateLeftRight turns (x (z a (y b c)) d) into (y (z a b) (x c d)).
func rotateLeftRight[K Key](x *node[K]) *node[K] {
	z := x.left
	assert(z != nil && z.right != nil, "rotateLeftRight requires a left-right grandchild")
	y := z.right
	z.right = y.left
	y.left = z
	x.left = y.right
	y.right = x
	update(x)
	update(z)
	update(y)
	return y
}

// rebalance restores the height balance of n and returns the new subtree root.
//
// Both children of n must be balanced and their heights may differ by at
// most 2. Ties between grandchildren select the single rotation. n is updated
// even when no rotation is necessary.
func rebalance[K Key](n *node[K]) *node[K] {
	update(n)
	lh, rh := height(n.left), height(n.right)
	switch {
	case lh > rh+1:
		if height(n.left.right) <= height(n.left.left) {
			return rotateRight(n)
		}
		return rotateLeftRight(n)
	case rh > lh+1:
		if height(n.right.left) <= height(n.right.right) {
			return rotateLeft(n)
		}
		return rotateRightLeft(n)
	}
	return n
}

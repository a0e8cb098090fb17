package avl

// node is a tree node. Children are owned exclusively by their parent; a node
// is never reachable from two slots.
type node[K Key] struct {
	key    K
	height int // 1 for a leaf; an absent child counts as 0
	sum    Summary
	left   *node[K]
	right  *node[K]
}

// makeNode materializes a detached node for key.
func makeNode[K Key](key K) *node[K] {
	return &node[K]{
		key:    key,
		height: 1,
		sum:    summaryOf(key),
	}
}

// height returns the height of n or 0 for an absent node.
func height[K Key](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// summary returns the summary of n or the zero summary for an absent node.
func summary[K Key](n *node[K]) Summary {
	if n == nil {
		return Summary{}
	}
	return n.sum
}

// update recomputes height and summary of n from its children.
//
// The children's augmentation must already be correct.
func update[K Key](n *node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
	n.sum = summary(n.left).Add(summaryOf(n.key)).Add(summary(n.right))
}

// detach clears the child links of n and returns them.
func (n *node[K]) detach() (left, right *node[K]) {
	left, right = n.left, n.right
	n.left, n.right = nil, nil
	return left, right
}

// minNode returns the leftmost node of subtree n.
func minNode[K Key](n *node[K]) *node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the rightmost node of subtree n.
func maxNode[K Key](n *node[K]) *node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// release tears down subtree n bottom-up, visiting every node exactly once.
func release[K Key](n *node[K]) int {
	if n == nil {
		return 0
	}
	left, right := n.detach()
	return release(left) + release(right) + 1
}

package avl

import "fmt"

// Check validates the structural invariants of the tree: key order, height
// balance, correct heights and summaries. Strict ordering implies unique keys
// and that no node is reachable twice.
//
// The check visits every node and is meant for tests.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nil {
		return nil
	}
	_, _, err := checkNode(t.root, nil, nil)
	return err
}

// checkNode validates subtree n, whose keys must lie strictly between lo and
// hi (where given). It returns the recomputed height and summary.
func checkNode[K Key](n *node[K], lo, hi *K) (int, Summary, error) {
	if n == nil {
		return 0, Summary{}, nil
	}
	if lo != nil && n.key <= *lo {
		return 0, Summary{}, fmt.Errorf("%w: key %d not greater than ancestor %d", ErrInvalidTree, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, Summary{}, fmt.Errorf("%w: key %d not less than ancestor %d", ErrInvalidTree, n.key, *hi)
	}
	key := n.key
	lh, ls, err := checkNode(n.left, lo, &key)
	if err != nil {
		return 0, Summary{}, err
	}
	rh, rs, err := checkNode(n.right, &key, hi)
	if err != nil {
		return 0, Summary{}, err
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, Summary{}, fmt.Errorf("%w: node %d unbalanced (left height %d, right height %d)",
			ErrInvalidTree, n.key, lh, rh)
	}
	h := max(lh, rh) + 1
	if n.height != h {
		return 0, Summary{}, fmt.Errorf("%w: node %d has height %d, expected %d", ErrInvalidTree, n.key, n.height, h)
	}
	s := ls.Add(summaryOf(n.key)).Add(rs)
	if n.sum != s {
		return 0, Summary{}, fmt.Errorf("%w: node %d has summary %+v, expected %+v", ErrInvalidTree, n.key, n.sum, s)
	}
	return h, s, nil
}

/*
Package avl provides a height-balanced binary search tree over integer keys,
augmented with subtree summaries (key sum and key count).

The tree is the engine behind package sumtree. Besides the usual ordered-set
operations it offers split and join primitives which divide a tree by a pivot
key or fuse two trees whose key ranges do not overlap. Both keep the AVL
height invariant and the summary augmentation intact and run in time
proportional to the tree height.

Range queries are expressed in terms of these primitives: a range sum splits
the tree twice, reads the summary of the middle part and joins the three parts
back together. No recursive summation over the range takes place.

Structure:
  - nodes own their children exclusively; there are no parent links,
    recursion supplies the ancestor chain,
  - rotations take owned subtrees and return the new subtree root,
  - every structural change is followed by update (height and summary)
    bottom-up, then by rebalance,
  - split and join consume their operands.

Trees are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

package avl

import "errors"

var (
	// ErrInvalidTree signals a violated structural invariant.
	ErrInvalidTree = errors.New("avl: invalid tree")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("avl: index out of bounds")
	// ErrOverlappingRanges signals that two trees cannot be joined because
	// their key ranges overlap or are in the wrong order.
	ErrOverlappingRanges = errors.New("avl: overlapping key ranges")
	// ErrUnsortedKeys signals bulk-load input which is not strictly ascending.
	ErrUnsortedKeys = errors.New("avl: keys not strictly ascending")
	// ErrSumOverflow signals a range sum which does not fit into an int64.
	ErrSumOverflow = errors.New("avl: range sum overflows int64")
)

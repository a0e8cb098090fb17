package avl

// Key is the constraint for tree keys.
//
// Keys are signed integers: range queries need to step one below and one
// above a bound.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Config configures a tree.
//
// The zero value is a valid configuration without any debug checks.
type Config struct {
	// CheckOrder makes Join verify that the key ranges of its operands do not
	// overlap. Without it, joining overlapping trees silently breaks ordering.
	CheckOrder bool
	// CheckInvariants runs a full invariant check after every mutating
	// operation and panics on violation. This is O(n) per operation and meant
	// for tests.
	CheckInvariants bool
}

package sumtree

import (
	"iter"
	"strconv"
	"strings"

	"github.com/npillmayer/sumtree/avl"
)

// Set is an ordered set of distinct integer keys which answers range-sum
// queries in O(log n).
//
// A set created by
//
//	sumtree.Set[int]{}
//
// is a valid empty set. Sets are mutable; use a pointer to share them.
// Note that range queries restructure the underlying tree as well, so even
// Sum must not run concurrently with any other operation.
type Set[K avl.Key] struct {
	cfg  avl.Config
	tree *avl.Tree[K]
}

// Option configures a Set.
type Option func(*avl.Config)

// WithOrderChecks lets Join verify that the key ranges of the joined sets do
// not overlap. The check costs O(log n).
func WithOrderChecks() Option {
	return func(cfg *avl.Config) {
		cfg.CheckOrder = true
	}
}

// WithInvariantChecks lets every mutating operation verify all tree
// invariants. The check costs O(n) and panics on failure; it is meant for
// tests and debugging.
func WithInvariantChecks() Option {
	return func(cfg *avl.Config) {
		cfg.CheckInvariants = true
	}
}

// New creates an empty set.
func New[K avl.Key](opts ...Option) *Set[K] {
	s := &Set[K]{}
	for _, opt := range opts {
		if opt != nil {
			opt(&s.cfg)
		}
	}
	return s
}

func setFromTree[K avl.Key](tree *avl.Tree[K]) *Set[K] {
	return &Set[K]{cfg: tree.Config(), tree: tree}
}

// engine returns the underlying tree, creating it on first use.
func (s *Set[K]) engine() *avl.Tree[K] {
	if s.tree == nil {
		s.tree = avl.New[K](s.cfg)
	}
	return s.tree
}

// Search reports whether key is an element of the set.
func (s *Set[K]) Search(key K) bool {
	if s == nil {
		return false
	}
	return s.tree.Contains(key)
}

// Insert adds key to the set. It returns false if key has already been an
// element, in which case the set is unchanged.
func (s *Set[K]) Insert(key K) bool {
	return s.engine().Insert(key)
}

// Remove deletes key from the set. It returns false if key has not been an
// element, in which case the set is unchanged.
func (s *Set[K]) Remove(key K) bool {
	if s == nil {
		return false
	}
	return s.tree.Remove(key)
}

// Sum returns the sum of all elements k with l <= k <= r. Sum is 0 if no
// element lies in [l, r], including the case l > r.
//
// For 64-bit keys the sum may overflow and wrap around, which is traced as an
// error. Use CheckedSum to handle it.
func (s *Set[K]) Sum(l, r K) int64 {
	sum := s.RangeSummary(l, r)
	if sum.Overflows() {
		T().Errorf("sumtree: sum[%d, %d] overflows int64 over %d keys", l, r, sum.Count)
	} else {
		T().Debugf("sumtree: sum[%d, %d] = %d over %d keys", l, r, sum.Sum, sum.Count)
	}
	return sum.Sum
}

// CheckedSum is like Sum, but returns an error wrapping avl.ErrSumOverflow if
// the sum does not fit into an int64.
func (s *Set[K]) CheckedSum(l, r K) (int64, error) {
	if s == nil {
		return 0, nil
	}
	return s.tree.CheckedSum(l, r)
}

// Count returns the number of elements k with l <= k <= r.
func (s *Set[K]) Count(l, r K) int {
	return s.RangeSummary(l, r).Count
}

// RangeSummary returns sum and count of all elements k with l <= k <= r.
func (s *Set[K]) RangeSummary(l, r K) avl.Summary {
	if s == nil || s.tree == nil {
		return avl.Summary{}
	}
	return s.tree.RangeSummary(l, r)
}

// Summary returns sum and count of all elements.
func (s *Set[K]) Summary() avl.Summary {
	if s == nil {
		return avl.Summary{}
	}
	return s.tree.Summary()
}

// Len returns the number of elements.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool {
	return s == nil || s.tree.IsEmpty()
}

// Height returns the height of the underlying tree, 0 for an empty set.
func (s *Set[K]) Height() int {
	if s == nil {
		return 0
	}
	return s.tree.Height()
}

// Min returns the smallest element, or false for an empty set.
func (s *Set[K]) Min() (K, bool) {
	if s == nil {
		var zero K
		return zero, false
	}
	return s.tree.Min()
}

// Max returns the largest element, or false for an empty set.
func (s *Set[K]) Max() (K, bool) {
	if s == nil {
		var zero K
		return zero, false
	}
	return s.tree.Max()
}

// At returns the i-th smallest element, counting from 0.
func (s *Set[K]) At(i int) (K, error) {
	if s == nil || s.tree == nil {
		var zero K
		return zero, avl.ErrIndexOutOfBounds
	}
	return s.tree.At(i)
}

// Rank returns the number of elements smaller than key.
func (s *Set[K]) Rank(key K) int {
	if s == nil {
		return 0
	}
	return s.tree.Rank(key)
}

// Keys returns an iterator over all elements in ascending order.
func (s *Set[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s != nil {
			s.tree.ForEach(yield)
		}
	}
}

// Walk visits every node of the underlying tree once in pre-order, without
// modifying it. Walking stops early if fn returns false.
func (s *Set[K]) Walk(fn func(info avl.NodeInfo[K]) bool) {
	if s == nil {
		return
	}
	s.tree.Walk(fn)
}

// Clear removes all elements and returns how many there were.
func (s *Set[K]) Clear() int {
	if s == nil {
		return 0
	}
	return s.tree.Clear()
}

// Check verifies the structural invariants of the underlying tree.
func (s *Set[K]) Check() error {
	if s == nil || s.tree == nil {
		return nil
	}
	return s.tree.Check()
}

// String returns the elements in ascending order, like {1 3 5}.
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k := range s.Keys() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.FormatInt(int64(k), 10))
	}
	b.WriteByte('}')
	return b.String()
}

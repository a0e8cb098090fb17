package sumtree

import (
	"slices"

	"github.com/npillmayer/sumtree/avl"
)

// Builder stages keys in any order and finalizes them into a Set.
//
// Builder collects keys unordered and materializes the set only when Set() is
// called. The set is built bottom-up from the sorted keys in one pass, which
// is cheaper than inserting them one by one and yields a tree of minimal
// height. Duplicate keys are dropped.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[K avl.Key] struct {
	opts   []Option
	staged []K

	done  bool
	dirty bool
	set   *Set[K]
}

// NewBuilder creates a new and empty set builder. Options are passed on to
// the resulting set.
func NewBuilder[K avl.Key](opts ...Option) *Builder[K] {
	return &Builder[K]{opts: opts}
}

// Set returns the set built from all staged keys.
//
// It is illegal to continue adding keys after Set has been called, but Set may
// be called multiple times. It returns the same set every time.
func (b *Builder[K]) Set() *Set[K] {
	if b == nil {
		return &Set[K]{}
	}
	if b.dirty || b.set == nil {
		b.set = b.buildSet()
		b.dirty = false
	}
	b.done = true
	if b.set.IsEmpty() {
		T().Debugf("set builder: set is void")
	}
	return b.set
}

// Reset drops the staged build and prepares the builder for a fresh build.
// Options are kept.
func (b *Builder[K]) Reset() {
	b.staged = nil
	b.done = false
	b.dirty = false
	b.set = nil
}

// Add stages keys, in any order.
func (b *Builder[K]) Add(keys ...K) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSetCompleted
	}
	if len(keys) == 0 {
		return nil
	}
	b.staged = append(b.staged, keys...)
	b.dirty = true
	return nil
}

// Len returns the number of staged keys, duplicates included.
func (b *Builder[K]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.staged)
}

func (b *Builder[K]) buildSet() *Set[K] {
	set := New[K](b.opts...)
	if len(b.staged) == 0 {
		return set
	}
	keys := slices.Clone(b.staged)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	tree, err := avl.FromSorted(set.cfg, keys)
	assert(err == nil, "builder: avl.FromSorted rejected sorted keys")
	set.tree = tree
	return set
}

package avl

import (
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./avl -run TestRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./avl -run '^$' -fuzz FuzzRandomizedProperty -fuzztime=10s

// model is the reference implementation: a plain set of keys.
type model map[int]struct{}

func (m model) sorted() []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (m model) sum(l, r int) int64 {
	var s int64
	for k := range m {
		if l <= k && k <= r {
			s += int64(k)
		}
	}
	return s
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], m model) {
	t.Helper()
	mustCheck(t, tree)
	want := m.sorted()
	got := collectKeys(tree)
	if !slices.Equal(got, want) {
		t.Fatalf("model mismatch: got %d keys, want %d", len(got), len(want))
	}
	if tree.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", tree.Len(), len(want))
	}
}

func runRandomizedOps(t *testing.T, seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tree := New[int](Config{})
	m := model{}
	for step := range steps {
		k := r.Intn(200) - 100
		switch op := r.Intn(10); {
		case op < 4:
			_, present := m[k]
			if tree.Insert(k) == present {
				t.Fatalf("seed=%d step=%d: Insert(%d) result disagrees with model", seed, step, k)
			}
			m[k] = struct{}{}
		case op < 7:
			_, present := m[k]
			if tree.Remove(k) != present {
				t.Fatalf("seed=%d step=%d: Remove(%d) result disagrees with model", seed, step, k)
			}
			delete(m, k)
		case op < 9:
			l := k
			hi := l + r.Intn(80) - 10
			if got, want := tree.Sum(l, hi), m.sum(l, hi); got != want {
				t.Fatalf("seed=%d step=%d: Sum(%d,%d) = %d, want %d", seed, step, l, hi, got, want)
			}
		default:
			_, present := m[k]
			if tree.Contains(k) != present {
				t.Fatalf("seed=%d step=%d: Contains(%d) disagrees with model", seed, step, k)
			}
		}
		if step%50 == 0 {
			assertTreeMatchesModel(t, tree, m)
		}
	}
	assertTreeMatchesModel(t, tree, m)
}

func TestRandomizedProperty(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1234} {
		runRandomizedOps(t, seed, 2000)
	}
}

func TestRandomizedSplitJoin(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := range 50 {
		m := model{}
		tree := New[int](Config{CheckOrder: true})
		for range r.Intn(300) {
			k := r.Intn(1000)
			tree.Insert(k)
			m[k] = struct{}{}
		}
		pivot := r.Intn(1100) - 50
		_, hasPivot := m[pivot]
		lo, hi, found := tree.Split(pivot)
		if found != hasPivot {
			t.Fatalf("round %d: Split(%d) found=%v, want %v", round, pivot, found, hasPivot)
		}
		mustCheck(t, lo)
		mustCheck(t, hi)
		if k, ok := lo.Max(); ok && k >= pivot {
			t.Fatalf("round %d: lo contains %d >= pivot %d", round, k, pivot)
		}
		if k, ok := hi.Min(); ok && k <= pivot {
			t.Fatalf("round %d: hi contains %d <= pivot %d", round, k, pivot)
		}
		if found {
			if err := lo.JoinWithKey(pivot, hi); err != nil {
				t.Fatalf("round %d: JoinWithKey failed: %v", round, err)
			}
		} else if err := lo.Join(hi); err != nil {
			t.Fatalf("round %d: Join failed: %v", round, err)
		}
		assertTreeMatchesModel(t, lo, m)
	}
}

func FuzzRandomizedProperty(f *testing.F) {
	for _, seed := range []int64{7, 11, 2024} {
		f.Add(seed, uint16(300))
	}
	f.Fuzz(func(t *testing.T, seed int64, steps uint16) {
		runRandomizedOps(t, seed, int(steps%2000))
	})
}

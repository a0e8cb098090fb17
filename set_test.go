package sumtree

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sumtree/avl"
)

func makeSet(t *testing.T, keys ...int) *Set[int] {
	t.Helper()
	s := New[int](WithOrderChecks(), WithInvariantChecks())
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

func TestZeroSet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var s Set[int]
	if !s.IsEmpty() || s.Len() != 0 || s.Sum(-5, 5) != 0 {
		t.Fatalf("zero set is not empty")
	}
	if s.Search(0) || s.Remove(0) {
		t.Errorf("zero set must not contain 0")
	}
	if err := s.Check(); err != nil {
		t.Errorf("zero set must be valid, got %v", err)
	}
	if s.String() != "{}" {
		t.Errorf("expected {}, got %s", s.String())
	}
	if !s.Insert(3) || s.String() != "{3}" {
		t.Errorf("zero set did not accept an insert: %s", s.String())
	}
	var nilset *Set[int]
	if nilset.Len() != 0 || nilset.Search(1) || nilset.Sum(0, 1) != 0 {
		t.Errorf("nil set must behave as empty")
	}
}

func TestSetSearchInsertRemoveSum(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := makeSet(t, 5, 3, 8, 1, 4, 7, 9)
	t.Logf("s = %s", s)
	if !s.Search(4) || s.Search(6) {
		t.Errorf("search results wrong for 4/6")
	}
	if sum := s.Sum(3, 8); sum != 27 {
		t.Errorf("Sum(3,8) = %d, want 27", sum)
	}
	if sum := s.Sum(10, 20); sum != 0 {
		t.Errorf("Sum(10,20) = %d, want 0", sum)
	}
	if sum := s.Sum(8, 3); sum != 0 {
		t.Errorf("Sum(8,3) = %d, want 0 for reversed bounds", sum)
	}
	if c := s.Count(2, 7); c != 4 {
		t.Errorf("Count(2,7) = %d, want 4", c)
	}
	if s.Insert(5) {
		t.Errorf("duplicate insert reported success")
	}
	if !s.Remove(5) || s.Remove(5) {
		t.Errorf("remove of 5 must succeed exactly once")
	}
	if s.String() != "{1 3 4 7 8 9}" {
		t.Errorf("unexpected set after removal: %s", s)
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestSetRemoveThenSum(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := makeSet(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	s.Remove(5)
	if sum := s.Sum(1, 10); sum != 50 {
		t.Errorf("Sum(1,10) = %d, want 50", sum)
	}
	if s.Search(5) {
		t.Errorf("5 still present")
	}
}

func TestSetOrderStatistics(t *testing.T) {
	s := makeSet(t, 30, 10, 20)
	if k, err := s.At(1); err != nil || k != 20 {
		t.Errorf("At(1) = %d,%v, want 20", k, err)
	}
	if _, err := s.At(3); !errors.Is(err, avl.ErrIndexOutOfBounds) {
		t.Errorf("expected out of bounds error, got %v", err)
	}
	if r := s.Rank(25); r != 2 {
		t.Errorf("Rank(25) = %d, want 2", r)
	}
	if k, ok := s.Min(); !ok || k != 10 {
		t.Errorf("Min = %d", k)
	}
	if k, ok := s.Max(); !ok || k != 30 {
		t.Errorf("Max = %d", k)
	}
	if got := slices.Collect(s.Keys()); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("Keys = %v", got)
	}
	if s.Summary().Sum != 60 || s.Height() != 2 {
		t.Errorf("unexpected summary %+v or height %d", s.Summary(), s.Height())
	}
	if n := s.Clear(); n != 3 || !s.IsEmpty() {
		t.Errorf("Clear released %d keys", n)
	}
}

func TestSplitAndJoinSets(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := makeSet(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	lo, hi, found := Split(s, 5)
	if !found {
		t.Fatalf("expected 5 to be found")
	}
	if !s.IsEmpty() {
		t.Errorf("split input must be left empty")
	}
	if lo.String() != "{1 2 3 4}" || hi.String() != "{6 7 8 9}" {
		t.Fatalf("unexpected split result %s / %s", lo, hi)
	}
	if _, err := Join(hi, lo); !errors.Is(err, avl.ErrOverlappingRanges) {
		t.Fatalf("expected reversed join to fail, got %v", err)
	}
	if lo.Len() != 4 || hi.Len() != 4 {
		t.Fatalf("failed join modified its inputs")
	}
	joined, err := JoinWithKey(lo, 5, hi)
	if err != nil {
		t.Fatal(err)
	}
	if joined.String() != "{1 2 3 4 5 6 7 8 9}" || !lo.IsEmpty() || !hi.IsEmpty() {
		t.Fatalf("unexpected join result %s", joined)
	}
	if err := joined.Check(); err != nil {
		t.Fatal(err)
	}
	a, b, _ := Split(joined, 0)
	all, err := Join(a, b)
	if err != nil || all.Sum(1, 9) != 45 {
		t.Fatalf("join after outer split failed: %v", err)
	}
	if _, err := Join[int](nil, all); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil input, got %v", err)
	}
}

func TestRandomizedSetAgainstSortedSlice(t *testing.T) {
	r := rand.New(rand.NewSource(1234))
	s := New[int32](WithOrderChecks(), WithInvariantChecks())
	var model []int32
	for step := range 2000 {
		k := int32(r.Intn(200) - 100)
		i, present := slices.BinarySearch(model, k)
		switch r.Intn(3) {
		case 0:
			if s.Insert(k) == present {
				t.Fatalf("step %d: Insert(%d) disagrees with model", step, k)
			}
			if !present {
				model = slices.Insert(model, i, k)
			}
		case 1:
			if s.Remove(k) != present {
				t.Fatalf("step %d: Remove(%d) disagrees with model", step, k)
			}
			if present {
				model = slices.Delete(model, i, i+1)
			}
		default:
			l, h := k, k+int32(r.Intn(60))
			var want int64
			for _, m := range model {
				if l <= m && m <= h {
					want += int64(m)
				}
			}
			if got := s.RangeSummary(l, h).Sum; got != want {
				t.Fatalf("step %d: sum[%d,%d] = %d, want %d", step, l, h, got, want)
			}
		}
	}
	if got := slices.Collect(s.Keys()); !slices.Equal(got, model) {
		t.Fatalf("final keys differ from model")
	}
}

func TestSetSumOverflow(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := New[int64]()
	s.Insert(math.MaxInt64)
	s.Insert(math.MaxInt64 - 1)
	t.Logf("wrapped sum = %d", s.Sum(math.MinInt64, math.MaxInt64))
	if _, err := s.CheckedSum(math.MinInt64, math.MaxInt64); !errors.Is(err, avl.ErrSumOverflow) {
		t.Fatalf("expected ErrSumOverflow, got %v", err)
	}
	if sum, err := s.CheckedSum(0, math.MaxInt64-1); err != nil || sum != math.MaxInt64-1 {
		t.Errorf("CheckedSum = %d,%v", sum, err)
	}
	var empty Set[int64]
	if sum, err := empty.CheckedSum(math.MinInt64, math.MaxInt64); err != nil || sum != 0 {
		t.Errorf("empty set CheckedSum = %d,%v", sum, err)
	}
}

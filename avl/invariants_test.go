package avl

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckDetectsOrderViolation(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3)
	tree.root.left.key = 5 // corrupt on purpose
	err := tree.Check()
	if !errors.Is(err, ErrInvalidTree) || !strings.Contains(err.Error(), "not less than") {
		t.Fatalf("expected order violation, got %v", err)
	}
}

func TestCheckDetectsHeightDrift(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3)
	tree.root.height = 7
	err := tree.Check()
	if err == nil || !strings.Contains(err.Error(), "has height 7") {
		t.Fatalf("expected height error, got %v", err)
	}
}

func TestCheckDetectsSummaryDrift(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3)
	tree.root.right.sum.Sum++
	err := tree.Check()
	if err == nil || !strings.Contains(err.Error(), "summary") {
		t.Fatalf("expected summary error, got %v", err)
	}
}

func TestCheckDetectsImbalance(t *testing.T) {
	tree := &Tree[int]{root: link(1, nil, link(2, nil, leaf(3)))}
	err := tree.Check()
	if err == nil || !strings.Contains(err.Error(), "unbalanced") {
		t.Fatalf("expected balance error, got %v", err)
	}
}

func TestCheckDetectsSharedNode(t *testing.T) {
	shared := leaf(2)
	root := link(2, shared, shared)
	tree := &Tree[int]{root: root}
	if err := tree.Check(); !errors.Is(err, ErrInvalidTree) {
		t.Fatalf("expected invalid tree for shared child, got %v", err)
	}
}

func TestVerifyPanicsOnCorruption(t *testing.T) {
	tree := makeIntTree(t, 10, 5, 15)
	tree.root.left.sum.Count = 0 // off the insertion path
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from invariant check")
		}
	}()
	tree.Insert(20)
}

package avl

import "math/bits"

// Summary is the augmentation aggregated over a subtree.
//
// Summaries form a monoid: Add is associative and the zero value is the
// neutral element.
//
// Sums are kept exactly as 128-bit two's complement values. Sum holds the low
// 64 bits, which is the sum itself unless Overflows reports true.
type Summary struct {
	Sum   int64 // sum of all keys in the subtree, low word
	Count int   // number of keys in the subtree
	high  int64 // high word of the exact sum
}

// summaryOf returns the summary of a single key.
func summaryOf[K Key](key K) Summary {
	s := Summary{Sum: int64(key), Count: 1}
	if key < 0 {
		s.high = -1
	}
	return s
}

// Zero returns the neutral summary.
func (Summary) Zero() Summary {
	return Summary{}
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	lo, carry := bits.Add64(uint64(s.Sum), uint64(other.Sum), 0)
	return Summary{
		Sum:   int64(lo),
		Count: s.Count + other.Count,
		high:  s.high + other.high + int64(carry),
	}
}

// Overflows reports whether the exact sum does not fit into an int64, in
// which case Sum has wrapped around.
func (s Summary) Overflows() bool {
	return s.high != s.Sum>>63
}

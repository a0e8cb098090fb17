/*
Package sumtree offers ordered sets of integers which answer range-sum queries
in logarithmic time.

# Sum Trees

A Set stores distinct integer keys in a height-balanced (AVL) binary search
tree. Every node carries the sum and the count of the keys in its subtree.
A query for the sum of all keys in an interval [l, r] does not walk the
interval: the tree is split into the parts below, inside and above the
interval, the summary of the middle part is read off its root, and the parts
are joined again. Search, insertion, removal and range queries all run in
O(log n).

	var s sumtree.Set[int]
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
	    s.Insert(k)
	}
	s.Sum(3, 8)   // 27
	s.Sum(10, 20) // 0

Sets may be bulk-loaded with a Builder, split at a pivot key and joined, as
long as the key ranges of the joined sets do not overlap.

The balanced tree itself lives in package avl. This package adds the
set-level API, tracing and diagnostic output (Print and Set2Dot).

Sets are not safe for concurrent use. Clients sharing a set between
goroutines have to protect it themselves.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sumtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SetError is an error type for the sumtree module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrSetCompleted signals that a set builder has already completed a set and
// it's illegal to further add keys.
const ErrSetCompleted = SetError("forbidden to add keys; set has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SetError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

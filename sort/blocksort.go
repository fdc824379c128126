package sort

import (
	"sort"

	blocksort "github.com/kisalnelaka/Adaptive-Block-Sort"
	"github.com/kisalnelaka/Adaptive-Block-Sort/parallel"
)

// Inputs at least this large have their blocks sorted in parallel.
const bsortGrainSize = 0x1000

// A span is one block of the partition: the half-open index range
// [lo, hi) of the collection.
type span struct {
	lo, hi int
}

/*
Sort sorts data in place, using the default configuration.

Sort partitions data into cache-sized blocks, sorts each block with an
insertion sort, merges the blocks with a bounded min-heap, and finishes
with a corrective insertion scan. The auxiliary memory is proportional to
the number of blocks, never to the number of elements. Sorting is
adaptive: runs of blocks that are already in order are merged without heap
work, and a fully sorted input is recognized with a single scan.

The sort is not stable: when two elements compare equal, the order in
which they appear in the result is unspecified.
*/
func Sort(data sort.Interface) {
	SortWithConfig(data, blocksort.DefaultConfig())
}

// SortWithConfig is like Sort, with an explicit tuning configuration. See
// the blocksort root package for the configuration fields and the block
// length heuristic.
func SortWithConfig(data sort.Interface, cfg blocksort.Config) {
	n := data.Len()
	if n <= 1 {
		return
	}
	if IsSorted(data) {
		return
	}
	spans := partition(n, blocksort.BlockLength(n, cfg))
	sortBlocks(data, spans)
	ordered := markOrdered(data, spans)
	mergeSpans(data, spans, ordered)
	// Safety net. Costs one linear scan when the merge left no inversions
	// behind, and repairs the result if it ever did.
	insertionSort(data, 0, n)
}

// partition splits [0, n) into spans of length b each, with the last span
// holding the remainder. The spans cover [0, n) exactly, with no gaps and
// no overlaps; every later stage relies on that and validates no bounds of
// its own.
func partition(n, b int) []span {
	spans := make([]span, 0, (n+b-1)/b)
	for lo := 0; lo < n; lo += b {
		hi := lo + b
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo, hi})
	}
	return spans
}

// insertionSort sorts data[lo:hi] in place. It shifts elements one
// position per comparison, which makes it linear on ranges that are
// already sorted.
func insertionSort(data sort.Interface, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

// sortBlocks sorts every span independently. Large inputs are handled by
// parallel.Range over the span indices: spans are disjoint, so the
// workers share no mutable state, and returning from Range is the barrier
// before run detection starts.
func sortBlocks(data sort.Interface, spans []span) {
	if n := spans[len(spans)-1].hi; n < bsortGrainSize {
		for _, s := range spans {
			insertionSort(data, s.lo, s.hi)
		}
		return
	}
	parallel.Range(0, len(spans), 0, func(low, high int) {
		for _, s := range spans[low:high] {
			insertionSort(data, s.lo, s.hi)
		}
	})
}

// markOrdered reports, for each boundary between adjacent spans, whether
// the boundary is already in merge order: the last element of span i is
// not greater than the first element of span i+1. The markers are
// advisory; they let the merge treat a run of ordered spans as a single
// source. markOrdered does not mutate data.
func markOrdered(data sort.Interface, spans []span) []bool {
	if len(spans) < 2 {
		return nil
	}
	ordered := make([]bool, len(spans)-1)
	for i := range ordered {
		ordered[i] = !data.Less(spans[i+1].lo, spans[i].hi-1)
	}
	return ordered
}

// Package blocksort provides the configuration and tuning primitives for an
// adaptive block sorting algorithm. The algorithm itself lives in the
// blocksort/sort subpackage; this root package holds what is shared between
// the subpackages.
//
// Adaptive block sort is a hybrid in-place comparison sort for large,
// possibly partially sorted collections. It partitions the collection into
// cache-sized blocks, sorts each block with an insertion sort, detects
// block boundaries that are already in order, merges the blocks with a
// bounded min-heap, and finishes with a corrective insertion scan that
// guarantees the result is sorted.
//
// The repository provides the following subpackages:
//
// blocksort/sort provides the sorting algorithm and convenience adapters
// for common slice types.
//
// blocksort/parallel provides simple functions for executing series of
// thunks, or thunks over ranges, in parallel. The sorting algorithm uses it
// to sort blocks on multiple CPUs, since blocks cover disjoint index
// ranges.
//
// blocksort/speculative provides early-terminating parallel predicates,
// used to detect already-sorted inputs without scanning them completely.
package blocksort

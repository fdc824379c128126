/*
Package sort provides an adaptive block sorting algorithm for in-memory
collections, together with convenience adapters for common slice types.
*/
package sort

import (
	"sort"
	"sync/atomic"

	"github.com/kisalnelaka/Adaptive-Block-Sort/speculative"
)

const serialCutoff = 10

/*
IsSorted determines in parallel whether data is already sorted. It
attempts to terminate early when the return value is false.
*/
func IsSorted(data sort.Interface) bool {
	size := data.Len()
	if size < bsortGrainSize {
		return sort.IsSorted(data)
	}
	for i := 1; i < serialCutoff; i++ {
		if data.Less(i, i-1) {
			return false
		}
	}
	var done int32
	defer atomic.StoreInt32(&done, 1)
	var pTest func(int, int) bool
	pTest = func(index, size int) bool {
		if size < bsortGrainSize {
			for i := index; i < index+size; i++ {
				if ((i % 1024) == 0) && (atomic.LoadInt32(&done) != 0) {
					return false
				}
				if data.Less(i, i-1) {
					return false
				}
			}
			return true
		}
		half := size / 2
		return speculative.And(
			func() bool { return pTest(index, half) },
			func() bool { return pTest(index+half, size-half) },
		)
	}
	return pTest(serialCutoff, size-serialCutoff)
}

/*
IntSlice attaches the methods of sort.Interface to []int, sorting in
increasing order.
*/
type IntSlice []int

func (s IntSlice) Len() int {
	return len(s)
}

func (s IntSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s IntSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Ints sorts a slice of ints in increasing order, using the default
// configuration.
func Ints(a []int) {
	Sort(IntSlice(a))
}

/*
IntsAreSorted determines in parallel whether a slice of ints is already
sorted in increasing order. It attempts to terminate early when the
return value is false.
*/
func IntsAreSorted(a []int) bool {
	return IsSorted(IntSlice(a))
}

/*
Float64Slice attaches the methods of sort.Interface to []float64, sorting
in increasing order.
*/
type Float64Slice []float64

func (s Float64Slice) Len() int {
	return len(s)
}

func (s Float64Slice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s Float64Slice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Float64s sorts a slice of float64s in increasing order, using the
// default configuration.
func Float64s(a []float64) {
	Sort(Float64Slice(a))
}

/*
Float64sAreSorted determines in parallel whether a slice of float64s is
already sorted in increasing order. It attempts to terminate early when
the return value is false.
*/
func Float64sAreSorted(a []float64) bool {
	return IsSorted(Float64Slice(a))
}

/*
StringSlice attaches the methods of sort.Interface to []string, sorting in
increasing order.
*/
type StringSlice []string

func (s StringSlice) Len() int {
	return len(s)
}

func (s StringSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s StringSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Strings sorts a slice of strings in increasing order, using the default
// configuration.
func Strings(a []string) {
	Sort(StringSlice(a))
}

/*
StringsAreSorted determines in parallel whether a slice of strings is
already sorted in increasing order. It attempts to terminate early when
the return value is false.
*/
func StringsAreSorted(a []string) bool {
	return IsSorted(StringSlice(a))
}

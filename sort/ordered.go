package sort

import "golang.org/x/exp/constraints"

/*
OrderedSlice attaches the methods of sort.Interface to a slice of any
ordered element type, sorting in increasing order.
*/
type OrderedSlice[T constraints.Ordered] []T

func (s OrderedSlice[T]) Len() int {
	return len(s)
}

func (s OrderedSlice[T]) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s OrderedSlice[T]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Slice sorts a slice of any ordered element type in increasing order,
// using the default configuration.
func Slice[T constraints.Ordered](a []T) {
	Sort(OrderedSlice[T](a))
}

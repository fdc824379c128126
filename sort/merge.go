package sort

import (
	"container/heap"
	"sort"
)

// mergeState is the bounded workspace of the k-way merge: one read cursor
// and one end index per source, plus a min-heap of source ids keyed by the
// element at each source's cursor. With k sources this is three slices of
// k ints, regardless of the number of elements.
type mergeState struct {
	data sort.Interface
	cur  []int
	end  []int
	h    []int
}

func (m *mergeState) Len() int {
	return len(m.h)
}

func (m *mergeState) Less(i, j int) bool {
	return m.data.Less(m.cur[m.h[i]], m.cur[m.h[j]])
}

func (m *mergeState) Swap(i, j int) {
	m.h[i], m.h[j] = m.h[j], m.h[i]
}

func (m *mergeState) Push(x interface{}) {
	m.h = append(m.h, x.(int))
}

func (m *mergeState) Pop() interface{} {
	id := m.h[len(m.h)-1]
	m.h = m.h[:len(m.h)-1]
	return id
}

// coalesce folds each maximal run of spans whose shared boundaries are
// marked ordered into a single source span. A run of sorted blocks whose
// boundaries are in order is itself sorted, so the heap can treat it as
// one source instead of competing per block.
func coalesce(spans []span, ordered []bool) []span {
	sources := make([]span, 0, len(spans))
	cur := spans[0]
	for i := 1; i < len(spans); i++ {
		if ordered[i-1] {
			cur.hi = spans[i].hi
		} else {
			sources = append(sources, cur)
			cur = spans[i]
		}
	}
	return append(sources, cur)
}

// mergeSpans merges the sorted spans into a single sorted range, in place.
//
// Invariant: the merged output occupies [start, p), and the unconsumed
// tails of all live sources occupy [p, n) contiguously, in source order.
// Extracting the minimum, at cursor c of the winning source, rotates
// data[p:c+1] right by one position through adjacent swaps, which moves
// the minimum to p and shifts every source between the output position and
// the winner one slot up; their cursors and ends advance accordingly. The
// winner's remaining elements do not move. Since every source is sorted
// and the heap root is the least among the sources' heads, the element
// written at p is in its final position.
//
// When the winner is the front-most live source, c equals p and the
// rotation is empty; on mostly ordered inputs this is the common case.
//
// When two heads compare equal, whichever of them is at the heap root is
// extracted first; no tie order is guaranteed.
func mergeSpans(data sort.Interface, spans []span, ordered []bool) {
	sources := coalesce(spans, ordered)
	if len(sources) < 2 {
		return
	}
	m := &mergeState{
		data: data,
		cur:  make([]int, len(sources)),
		end:  make([]int, len(sources)),
		h:    make([]int, len(sources)),
	}
	for id, s := range sources {
		m.cur[id] = s.lo
		m.end[id] = s.hi
		m.h[id] = id
	}
	heap.Init(m)
	first := 0 // all sources below this are exhausted
	for p := sources[0].lo; len(m.h) > 0; p++ {
		id := m.h[0]
		c := m.cur[id]
		for i := c; i > p; i-- {
			data.Swap(i, i-1)
		}
		if c > p {
			for s := first; s < id; s++ {
				if m.cur[s] < m.end[s] {
					m.cur[s]++
					m.end[s]++
				}
			}
		}
		m.cur[id] = c + 1
		if m.cur[id] < m.end[id] {
			heap.Fix(m, 0)
		} else {
			heap.Pop(m)
			for first < len(sources) && m.cur[first] >= m.end[first] {
				first++
			}
		}
	}
}

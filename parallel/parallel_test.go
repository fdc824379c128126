package parallel_test

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/kisalnelaka/Adaptive-Block-Sort/parallel"
)

func ExampleDo() {
	var fib func(int) int

	fib = func(n int) int {
		if n < 2 {
			return n
		}
		if n < 20 {
			return fib(n-1) + fib(n-2)
		}
		var n1, n2 int
		parallel.Do(
			func() { n1 = fib(n - 1) },
			func() { n2 = fib(n - 2) },
		)
		return n1 + n2
	}

	fmt.Println(fib(30))

	// Output:
	// 832040
}

func ExampleRange() {
	squares := make([]int, 10)
	parallel.Range(0, len(squares), 0, func(low, high int) {
		for i := low; i < high; i++ {
			squares[i] = i * i
		}
	})
	fmt.Println(squares)

	// Output:
	// [0 1 4 9 16 25 36 49 64 81]
}

func TestRangeCoverage(t *testing.T) {
	for _, n := range []int{0, 1, 7, runtime.GOMAXPROCS(0), 1000} {
		const size = 10000
		visits := make([]int32, size)
		parallel.Range(0, size, n, func(low, high int) {
			if low > high {
				t.Errorf("invalid batch %v:%v", low, high)
			}
			for i := low; i < high; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
		})
		for i, v := range visits {
			if v != 1 {
				t.Fatalf("n = %v: index %v visited %v times", n, i, v)
			}
		}
	}
}

func TestRangeEmpty(t *testing.T) {
	invoked := int32(0)
	parallel.Range(5, 5, 0, func(low, high int) {
		atomic.AddInt32(&invoked, 1)
		if low != 5 || high != 5 {
			t.Errorf("unexpected batch %v:%v", low, high)
		}
	})
	if invoked != 1 {
		t.Errorf("empty range invoked %v times", invoked)
	}
}

func TestDoPanic(t *testing.T) {
	defer func() {
		if p := recover(); p != "boom" {
			t.Errorf("recovered %v, want boom", p)
		}
	}()
	parallel.Do(
		func() {},
		func() { panic("boom") },
	)
}

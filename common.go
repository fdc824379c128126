package blocksort

import "math"

type (
	// A Thunk is a function that neither receives nor returns any
	// parameters.
	Thunk func()

	// A RangeFunc is a function that receives a range from low to high,
	// with 0 <= low <= high.
	RangeFunc func(low, high int)

	// A Predicate is a function that receives no parameters and returns
	// a bool.
	Predicate func() bool
)

// Defaults for the fields of Config, assuming 64-byte cache lines and
// 8-byte elements.
const (
	DefaultCacheLineBytes = 64
	DefaultElementSize    = 8
	DefaultMinBlockLen    = 16
)

/*
Config tunes the block partitioning of the sorting algorithm in the
blocksort/sort subpackage.

Config is an explicit parameter of the sort call, never package-level
state, so that concurrent sorts with different tunings cannot interfere
with each other. The zero value of any field falls back to the
corresponding default, so Config{} behaves like DefaultConfig().
*/
type Config struct {
	// CacheLineBytes is the assumed size of a cache line.
	CacheLineBytes int

	// ElementSize is the assumed size of one element in bytes. Together
	// with CacheLineBytes it determines how many elements share a cache
	// line, which bounds the block length from below.
	ElementSize int

	// MinBlockLen is a floor on the block length. It prevents degenerate
	// partitions with near-single-element blocks on small inputs.
	MinBlockLen int
}

// DefaultConfig returns the default tuning configuration.
func DefaultConfig() Config {
	return Config{
		CacheLineBytes: DefaultCacheLineBytes,
		ElementSize:    DefaultElementSize,
		MinBlockLen:    DefaultMinBlockLen,
	}
}

func (c Config) withDefaults() Config {
	if c.CacheLineBytes <= 0 {
		c.CacheLineBytes = DefaultCacheLineBytes
	}
	if c.ElementSize <= 0 {
		c.ElementSize = DefaultElementSize
	}
	if c.MinBlockLen <= 0 {
		c.MinBlockLen = DefaultMinBlockLen
	}
	return c
}

/*
BlockLength determines the block length for partitioning a collection of n
elements under the given configuration.

The heuristic aims at sqrt(n)/2, rounded down to an even length, so that
the amount of merge work grows slowly with n. The result is never smaller
than the number of elements that fit in one cache line
(CacheLineBytes / ElementSize), and never smaller than MinBlockLen.

BlockLength is a pure function: it only computes a length, it never
inspects or mutates the collection.
*/
func BlockLength(n int, cfg Config) int {
	cfg = cfg.withDefaults()
	elems := cfg.CacheLineBytes / cfg.ElementSize
	if elems < 1 {
		elems = 1
	}
	b := int(math.Sqrt(float64(n)) / 2)
	b -= b % 2
	if b < elems {
		b = elems
	}
	if b < cfg.MinBlockLen {
		b = cfg.MinBlockLen
	}
	return b
}

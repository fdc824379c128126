package speculative_test

import (
	"testing"

	blocksort "github.com/kisalnelaka/Adaptive-Block-Sort"
	"github.com/kisalnelaka/Adaptive-Block-Sort/speculative"
)

func constant(b bool) blocksort.Predicate {
	return func() bool { return b }
}

func TestAnd(t *testing.T) {
	if !speculative.And() {
		t.Errorf("And() = false, want true")
	}
	if !speculative.And(constant(true), constant(true), constant(true)) {
		t.Errorf("And(true, true, true) = false, want true")
	}
	if speculative.And(constant(true), constant(false), constant(true)) {
		t.Errorf("And(true, false, true) = true, want false")
	}
}

func TestOr(t *testing.T) {
	if speculative.Or() {
		t.Errorf("Or() = true, want false")
	}
	if speculative.Or(constant(false), constant(false), constant(false)) {
		t.Errorf("Or(false, false, false) = true, want false")
	}
	if !speculative.Or(constant(false), constant(true), constant(false)) {
		t.Errorf("Or(false, true, false) = false, want true")
	}
}

func TestAndEarlyTermination(t *testing.T) {
	// The left-most predicate returns false immediately; And must not wait
	// for the blocking one.
	release := make(chan struct{})
	defer close(release)
	if speculative.And(
		constant(false),
		func() bool { <-release; return true },
	) {
		t.Errorf("And = true, want false")
	}
}

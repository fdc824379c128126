/*
Package speculative provides functions for expressing parallel algorithms
that terminate early when they can.

And and Or terminate early if the final return value is known early (if
any of the predicates invoked in parallel returns false for And, or true
for Or).

Both functions also handle panics. However, panics may not propagate to
the invoking goroutine in case they terminate early because of a known
return value.

Neither function stops the execution of invoked predicates that may still
be running in parallel in case of early termination. To ensure that
compute resources are freed up in such cases, user programs need to use
some other safe form of communication, for example an atomic flag checked
by the predicates themselves.
*/
package speculative

import (
	"sync"

	blocksort "github.com/kisalnelaka/Adaptive-Block-Sort"
)

/*
And receives zero or more Predicate functions and executes them in
parallel.

Each predicate is invoked in its own goroutine, and And returns true if
all of them return true; or And returns false when at least one of them
returns false, without waiting for the other predicates to terminate.

If one or more predicates panic, the corresponding goroutines recover the
panics, and And may eventually panic with the left-most recovered panic
value. If both panics occur and false values are returned, then the
left-most of these events takes precedence.
*/
func And(predicates ...blocksort.Predicate) (result bool) {
	switch len(predicates) {
	case 0:
		return true
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				wg.Done()
				p = recover()
			}()
			b1 = predicates[1]()
		}()
		b0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				wg.Done()
				p = recover()
			}()
			b1 = And(predicates[half:]...)
		}()
		b0 = And(predicates[:half]...)
	}
	if !b0 {
		return false
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}

/*
Or receives zero or more Predicate functions and executes them in
parallel.

Each predicate is invoked in its own goroutine, and Or returns false if
all of them return false; or Or returns true when at least one of them
returns true, without waiting for the other predicates to terminate.

If one or more predicates panic, the corresponding goroutines recover the
panics, and Or may eventually panic with the left-most recovered panic
value. If both panics occur and true values are returned, then the
left-most of these events takes precedence.
*/
func Or(predicates ...blocksort.Predicate) (result bool) {
	switch len(predicates) {
	case 0:
		return false
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				wg.Done()
				p = recover()
			}()
			b1 = predicates[1]()
		}()
		b0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				wg.Done()
				p = recover()
			}()
			b1 = Or(predicates[half:]...)
		}()
		b0 = Or(predicates[:half]...)
	}
	if b0 {
		return true
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}

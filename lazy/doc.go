// Package lazy provides a minimal and idiomatic deferred-computation engine for Go.
//
// Lazy-ive Go introduces a single value type, [Eval], that represents a value
// which may be computed strictly ([Now]), lazily once with memoization
// ([Once]), or lazily on every demand ([Always]). Computations compose
// through [Map] and [FlatMap] into chains of arbitrary depth, and evaluation
// strategy stays independent of how the chain was built.
//
// # Why a trampoline?
//
// Go doesn't guarantee tail-call elimination, so a chain of ten thousand
// dependent steps evaluated by recursion would exhaust the goroutine stack.
// [Eval.Get] instead drives an iterative run-loop over an explicit,
// heap-allocated continuation stack: native stack depth stays bounded no
// matter how long the chain is.
//
// Benefits include:
//   - Evaluation strategy chosen per leaf (strict / once / every time)
//   - Stack-safe composition: FlatMap chains of arbitrary depth
//   - Stack-safe bulk sequencing over Go iterators ([Sequence])
//   - Stack-safe loops via [TailRec]
//
// # Failure model
//
// There is exactly one failure channel: a panic raised by a producer or a
// continuation aborts evaluation and propagates out of [Eval.Get] unchanged.
// Nothing is swallowed and nothing is caught, with one exception: a [Once]
// cell records the panic value on first evaluation and re-panics with the
// identical value on every later demand, without re-running its producer.
//
// Evaluation is synchronous and single-threaded. Evaluating the same
// memoized computation from multiple goroutines concurrently is not
// supported; guard it externally if you need that.
//
// Example:
//
//	fib := lazy.TailRec([2]int{0, 1}, func(p [2]int) lazy.Eval[lazy.Step[[2]int, int]] {
//	    if p[1] > 1_000_000 {
//	        return lazy.Now(lazy.Done[[2]int](p[1]))
//	    }
//	    return lazy.Now(lazy.Continue[[2]int, int]([2]int{p[1], p[0] + p[1]}))
//	})
//	_ = fib.Get()
package lazy

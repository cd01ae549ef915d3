package lazy

import "fmt"

// Get evaluates the computation to completion and returns its value.
//
// Evaluation runs an iterative trampoline over an explicit continuation
// stack, so native call-stack depth stays bounded regardless of how many
// Map/FlatMap steps the chain contains. A panic raised by any producer or
// continuation propagates to the caller unchanged.
//
// A computation that regenerates itself forever (an unbounded Suspend or
// TailRec recursion) runs forever, exactly as an unbounded loop would;
// bounding it is the caller's job.
func (m Eval[A]) Get() A {
	return run(m.n).(A)
}

// ForEach evaluates the computation and applies f to its value,
// discarding f's effects on the result.
func (m Eval[A]) ForEach(f func(A)) {
	f(m.Get())
}

// run is the trampoline. State is the node under inspection, the nearest
// pending continuation, and an explicit stack of older continuations.
//
// Each iteration either descends into strictly smaller structure (defer,
// bind) or resolves a leaf and advances past it (strict, always, memo), so
// the loop terminates for every finite chain.
func run(current node) Erased {
	var firstBind func(Erased) node
	var restBinds []func(Erased) node
	for {
		switch n := current.(type) {
		case *strictNode:
			k := firstBind
			if k == nil {
				if len(restBinds) == 0 {
					return n.value
				}
				k = restBinds[len(restBinds)-1]
				restBinds = restBinds[:len(restBinds)-1]
			}
			firstBind = nil
			current = k(n.value)
		case *alwaysNode:
			// Fold leaf evaluation into the strict case next iteration.
			current = &strictNode{value: n.produce()}
		case *memoNode:
			current = &strictNode{value: n.get()}
		case *deferNode:
			// Unwrapping a deferred construction is free: same
			// continuation state, no stack frame consumed.
			current = n.next()
		case *bindNode:
			// Older continuations accumulate LIFO so the one pending
			// longest resolves last: left-to-right, innermost first.
			if firstBind != nil {
				restBinds = append(restBinds, firstBind)
			}
			firstBind = n.cont
			current = n.source
		default:
			panic(fmt.Sprintf("lazy: unknown node type %T", current))
		}
	}
}

package lazy

// Erased marks a type-erased value inside the node tree. Concrete types are
// recovered by a single assertion at the typed Eval[A] surface.
type Erased = any

// node is the marker interface for the five computation variants.
// Dispatch uses type switches in the run-loop; node is pure structure.
type node interface {
	node()
}

// strictNode holds an already-computed value.
type strictNode struct {
	value Erased
}

func (*strictNode) node() {}

// alwaysNode re-invokes its producer on every evaluation. Nothing is cached.
type alwaysNode struct {
	produce func() Erased
}

func (*alwaysNode) node() {}

// memoNode invokes its producer at most once and caches the outcome,
// value or panic alike. The producer reference is dropped after first use so
// captured state doesn't outlive it.
type memoNode struct {
	produce func() Erased
	value   Erased
	failure any
	done    bool
}

func (*memoNode) node() {}

// get returns the cached value, filling the cache on first demand.
// A panicking producer is recorded and re-raised identically on every
// later call, without re-invoking the producer.
func (n *memoNode) get() Erased {
	if n.done {
		if n.failure != nil {
			panic(n.failure)
		}
		return n.value
	}
	produce := n.produce
	n.produce = nil
	n.done = true
	defer func() {
		if r := recover(); r != nil {
			n.failure = r
			panic(r)
		}
	}()
	n.value = produce()
	return n.value
}

// deferNode defers the construction of the rest of the chain, not just a
// value. Essential for recursive definitions that would otherwise build an
// infinite chain eagerly.
type deferNode struct {
	next func() node
}

func (*deferNode) node() {}

// bindNode sequences a source computation into a continuation.
// Immutable: composing never mutates an existing node, it wraps it.
type bindNode struct {
	source node
	cont   func(Erased) node
}

func (*bindNode) node() {}

// Eval represents a deferred computation producing a value of type A.
// The zero value is not meaningful; build one with [Now], [Always], [Once],
// [Suspend], [Unit] or the composition operators.
type Eval[A any] struct {
	n node
}

// Now lifts an already-computed value into a strict computation.
func Now[A any](value A) Eval[A] {
	return Eval[A]{n: &strictNode{value: value}}
}

// Always returns a computation that re-invokes produce on every evaluation.
// A panic from produce propagates out of Get and is not cached.
func Always[A any](produce func() A) Eval[A] {
	return Eval[A]{n: &alwaysNode{produce: erase(produce)}}
}

// Once returns a computation that invokes produce on first evaluation only
// and serves the cached outcome, value or panic, ever after.
// At most one goroutine may evaluate it at a time.
func Once[A any](produce func() A) Eval[A] {
	return Eval[A]{n: &memoNode{produce: erase(produce)}}
}

// Suspend defers the construction of a computation until evaluation demands
// it. Unwrapping one Suspend level costs no continuation and no stack frame,
// which is what makes recursive definitions like retry loops safe.
func Suspend[A any](build func() Eval[A]) Eval[A] {
	return Eval[A]{n: &deferNode{next: func() node { return build().n }}}
}

// unitEval is the shared strict computation of the empty value.
// Strict nodes are immutable, so sharing is safe.
var unitEval = Eval[struct{}]{n: &strictNode{value: struct{}{}}}

// Unit returns the shared strict computation holding the empty value.
func Unit() Eval[struct{}] {
	return unitEval
}

func erase[A any](produce func() A) func() Erased {
	return func() Erased { return produce() }
}

package lazy

import (
	"iter"
	"slices"
)

// Sequence folds a sequence of computations into one computation of the
// ordered results. Nothing is pulled from seq until the result is evaluated;
// evaluation then pulls one element at a time, fully evaluating each
// element's computation before pulling the next.
//
// The chain is one bind per element and is unwound by the trampoline, so
// sequences in the tens of thousands of elements evaluate in bounded native
// stack space. An empty sequence yields an empty, non-nil slice.
func Sequence[A any](seq iter.Seq[Eval[A]]) Eval[[]A] {
	return Suspend(func() Eval[[]A] {
		next, stop := iter.Pull(seq)
		return sequenceFrom(next, stop, []A{})
	})
}

// sequenceFrom pulls one element and binds its evaluation to the recursive
// pull of the rest. The recursion happens inside bind continuations entered
// from the run-loop with the previous frame already discharged, so native
// stack depth stays flat even at construction.
func sequenceFrom[A any](next func() (Eval[A], bool), stop func(), acc []A) Eval[[]A] {
	m, ok := next()
	if !ok {
		stop()
		return Now(acc)
	}
	return FlatMap(m, func(a A) Eval[[]A] {
		return sequenceFrom(next, stop, append(acc, a))
	})
}

// SequenceSlice is Sequence over the elements of a slice.
func SequenceSlice[A any](ms []Eval[A]) Eval[[]A] {
	return Sequence(slices.Values(ms))
}

package lazy

// Step is the outcome of one loop iteration: either continue with a new
// seed or finish with a result. Build one with [Continue] or [Done].
type Step[S, A any] struct {
	seed   S
	result A
	done   bool
}

// Continue signals another iteration with the given seed.
func Continue[S, A any](seed S) Step[S, A] {
	return Step[S, A]{seed: seed}
}

// Done signals loop completion with the given result.
func Done[S any, A any](result A) Step[S, A] {
	return Step[S, A]{result: result, done: true}
}

// TailRec evaluates step repeatedly, threading the seed, until a [Done]
// step is produced. The recursion returns a bind-wrapped computation
// instead of invoking the next step directly, so once evaluation begins the
// trampoline, not the native stack, drives the iteration: loops of millions
// of steps run in bounded stack space.
func TailRec[S, A any](seed S, step func(S) Eval[Step[S, A]]) Eval[A] {
	return FlatMap(step(seed), func(s Step[S, A]) Eval[A] {
		if s.done {
			return Now(s.result)
		}
		return TailRec(s.seed, step)
	})
}

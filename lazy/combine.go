package lazy

// Fixed-arity combinators over independent computations. Each is a thin
// nest of FlatMap/Map that builds the same right-leaning bind chain
// Sequence would, with the types kept heterogeneous.

// Map2 combines two computations with f, evaluating left to right.
func Map2[A, B, Z any](ma Eval[A], mb Eval[B], f func(A, B) Z) Eval[Z] {
	return FlatMap(ma, func(a A) Eval[Z] {
		return Map(mb, func(b B) Z { return f(a, b) })
	})
}

// Map3 combines three computations with f, evaluating left to right.
func Map3[A, B, C, Z any](ma Eval[A], mb Eval[B], mc Eval[C], f func(A, B, C) Z) Eval[Z] {
	return FlatMap(ma, func(a A) Eval[Z] {
		return Map2(mb, mc, func(b B, c C) Z { return f(a, b, c) })
	})
}

// Map4 combines four computations with f, evaluating left to right.
func Map4[A, B, C, D, Z any](ma Eval[A], mb Eval[B], mc Eval[C], md Eval[D], f func(A, B, C, D) Z) Eval[Z] {
	return FlatMap(ma, func(a A) Eval[Z] {
		return Map3(mb, mc, md, func(b B, c C, d D) Z { return f(a, b, c, d) })
	})
}

// Map5 combines five computations with f, evaluating left to right.
func Map5[A, B, C, D, E, Z any](ma Eval[A], mb Eval[B], mc Eval[C], md Eval[D], me Eval[E], f func(A, B, C, D, E) Z) Eval[Z] {
	return FlatMap(ma, func(a A) Eval[Z] {
		return Map4(mb, mc, md, me, func(b B, c C, d D, e E) Z { return f(a, b, c, d, e) })
	})
}

// Map6 combines six computations with f, evaluating left to right.
func Map6[A, B, C, D, E, F, Z any](ma Eval[A], mb Eval[B], mc Eval[C], md Eval[D], me Eval[E], mf Eval[F], f func(A, B, C, D, E, F) Z) Eval[Z] {
	return FlatMap(ma, func(a A) Eval[Z] {
		return Map5(mb, mc, md, me, mf, func(b B, c C, d D, e E, ff F) Z { return f(a, b, c, d, e, ff) })
	})
}

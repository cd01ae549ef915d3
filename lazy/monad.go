package lazy

// Composition operators for deferred computations.
//
// Minimal definition: Now (unit) and FlatMap are necessary and sufficient.
// Map and Then are derived and kept for call-site clarity. All three are
// package-level functions because Go methods cannot introduce type
// parameters.

// FlatMap sequences m into f: evaluate m, pass the value to f, evaluate the
// computation f returns. Building the chain allocates one bind node and
// never evaluates anything.
func FlatMap[A, B any](m Eval[A], f func(A) Eval[B]) Eval[B] {
	return Eval[B]{n: &bindNode{
		source: m.n,
		cont: func(v Erased) node {
			return f(v.(A)).n
		},
	}}
}

// Map applies a pure function to the result of m.
// Represented as a bind whose continuation wraps f's result strictly, so
// the run-loop has a single sequencing path for Map and FlatMap alike.
func Map[A, B any](m Eval[A], f func(A) B) Eval[B] {
	return Eval[B]{n: &bindNode{
		source: m.n,
		cont: func(v Erased) node {
			return &strictNode{value: f(v.(A))}
		},
	}}
}

// Then sequences two computations, discarding the first result.
func Then[A, B any](m Eval[A], n Eval[B]) Eval[B] {
	return FlatMap(m, func(_ A) Eval[B] { return n })
}

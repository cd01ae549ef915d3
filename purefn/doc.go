// Package purefn provides memoization utilities for pure functions.
//
// The Tableize family memoizes pure function calls by their input values in
// a bounded trie table. The functions assume purity — not just determinism,
// but referential transparency — which is exactly the assumption a deferred
// computation makes of its producers, so the two compose naturally.
//
// Features:
//   - TableizeI1O1 to TableizeI4O1: typed, generic memoizers for common arities.
//   - LazifyI1O1, LazifyI2O1: keyed deferred computations — one lazily
//     memoized lazy.Eval per input tuple, table-bounded.
//   - Trie-based bounded cache with dual-generation rotation.
//   - Stringer inputs folded to xxhash words, never retained as strings.
//
// WARNING: do not tableize impure functions (those depending on time, I/O,
// randomness, etc). A memo table turns an impure function into a stale one.
package purefn

package purefn

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/lazy_ive_go/pure"
)

// ComparableOrStringer is an input usable as a memo key: either a
// comparable value, or one carrying a fmt.Stringer identity.
type ComparableOrStringer any

// TableizeI1O1 memoizes a pure single-argument function in a table bounded
// at maxTableSize entries per generation.
func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

// TableizeI2O1 memoizes a pure two-argument function.
func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

// TableizeI3O1 memoizes a pure three-argument function.
func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

// TableizeI4O1 memoizes a pure four-argument function.
func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

// tableKey folds an input into its trie key. Stringer identities are hashed
// to a fixed-width word so the table holds hashes, not key strings; other
// inputs are used as comparable keys directly.
func tableKey(i ComparableOrStringer) pure.Key {
	if stringer, ok := i.(fmt.Stringer); ok {
		return xxhash.Sum64String(stringer.String())
	}
	return i
}

func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
	maxTableSize uint32,
) func(...ComparableOrStringer) O {
	memo := pure.NewTrie[O](maxTableSize)
	return func(args ...ComparableOrStringer) O {
		keys := make([]pure.Key, len(args))
		for i, arg := range args {
			keys[i] = tableKey(arg)
		}
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}

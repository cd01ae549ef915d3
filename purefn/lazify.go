package purefn

import (
	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/on-the-ground/lazy_ive_go/pure"
)

// LazifyI1O1 turns a pure function into a keyed deferred computation: each
// input gets its own lazy.Eval whose result is computed on first demand and
// memoized, both in the returned computation and in the bounded table. Two
// calls with the same input return the same computation while the table
// retains the key; after eviction a fresh (again once-only) computation is
// handed out.
func LazifyI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) lazy.Eval[O1] {
	memo := pure.NewTrie[lazy.Eval[O1]](maxTableSize)
	return func(i1 I1) lazy.Eval[O1] {
		keys := []pure.Key{tableKey(i1)}
		if m, ok := memo.Load(keys); ok {
			return m
		}
		m := lazy.Once(func() O1 { return pureFn(i1) })
		memo.Store(keys, m)
		return m
	}
}

// LazifyI2O1 is LazifyI1O1 for two-argument functions.
func LazifyI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) lazy.Eval[O1] {
	memo := pure.NewTrie[lazy.Eval[O1]](maxTableSize)
	return func(i1 I1, i2 I2) lazy.Eval[O1] {
		keys := []pure.Key{tableKey(i1), tableKey(i2)}
		if m, ok := memo.Load(keys); ok {
			return m
		}
		m := lazy.Once(func() O1 { return pureFn(i1, i2) })
		memo.Store(keys, m)
		return m
	}
}

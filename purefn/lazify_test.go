package purefn_test

import (
	"testing"

	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/on-the-ground/lazy_ive_go/purefn"
	"github.com/stretchr/testify/assert"
)

func TestLazifyI1O1_OncePerKey(t *testing.T) {
	calls := 0
	square := purefn.LazifyI1O1(func(n int) int {
		calls++
		return n * n
	}, 8)

	m := square(4)
	// nothing computed until demanded
	assert.Equal(t, 0, calls)

	assert.Equal(t, 16, m.Get())
	assert.Equal(t, 16, m.Get())
	assert.Equal(t, 16, square(4).Get())
	assert.Equal(t, 25, square(5).Get())
	assert.Equal(t, 2, calls)
}

func TestLazifyI1O1_SharesComputationPerKey(t *testing.T) {
	square := purefn.LazifyI1O1(func(n int) int { return n * n }, 8)

	assert.Equal(t, square(3), square(3))
}

func TestLazifyI1O1_ComposesWithSequence(t *testing.T) {
	calls := 0
	square := purefn.LazifyI1O1(func(n int) int {
		calls++
		return n * n
	}, 8)

	got := lazy.SequenceSlice([]lazy.Eval[int]{
		square(2), square(3), square(2),
	}).Get()

	assert.Equal(t, []int{4, 9, 4}, got)
	// the repeated key evaluated once
	assert.Equal(t, 2, calls)
}

func TestLazifyI2O1_OncePerKeyPair(t *testing.T) {
	calls := 0
	area := purefn.LazifyI2O1(func(w, h int) int {
		calls++
		return w * h
	}, 8)

	assert.Equal(t, 6, area(2, 3).Get())
	assert.Equal(t, 6, area(2, 3).Get())
	assert.Equal(t, 8, area(2, 4).Get())
	assert.Equal(t, 2, calls)
}

func TestLazifyI1O1_EvictionHandsOutFreshComputation(t *testing.T) {
	calls := 0
	id := purefn.LazifyI1O1(func(n int) int {
		calls++
		return n
	}, 1)

	assert.Equal(t, 1, id(1).Get())
	// fill past the bound twice so key 1 falls out of both generations
	_ = id(2).Get()
	_ = id(3).Get()

	assert.Equal(t, 1, id(1).Get())
	assert.Equal(t, 4, calls)
}

package lazy_test

import (
	"testing"

	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow_StrictIdentity(t *testing.T) {
	m := lazy.Now(42)

	assert.Equal(t, 42, m.Get())
	assert.Equal(t, 42, m.Get())
}

func TestAlways_ReinvokesProducer(t *testing.T) {
	calls := 0
	m := lazy.Always(func() int {
		calls++
		return calls
	})

	// construction runs nothing
	assert.Equal(t, 0, calls)

	assert.Equal(t, 1, m.Get())
	assert.Equal(t, 2, m.Get())
	assert.Equal(t, 3, m.Get())
	assert.Equal(t, 3, calls)
}

func TestAlways_PanicNotCached(t *testing.T) {
	calls := 0
	m := lazy.Always(func() int {
		calls++
		if calls == 1 {
			panic("transient")
		}
		return calls
	})

	assert.PanicsWithValue(t, "transient", func() { m.Get() })
	assert.Equal(t, 2, m.Get())
}

func TestOnce_Idempotent(t *testing.T) {
	calls := 0
	m := lazy.Once(func() int {
		calls++
		return 7
	})

	assert.Equal(t, 0, calls)
	for range 5 {
		assert.Equal(t, 7, m.Get())
	}
	assert.Equal(t, 1, calls)
}

func TestOnce_FailureCached(t *testing.T) {
	calls := 0
	m := lazy.Once(func() int {
		calls++
		panic("boom")
	})

	assert.PanicsWithValue(t, "boom", func() { m.Get() })
	// the identical panic value, without re-invoking the producer
	assert.PanicsWithValue(t, "boom", func() { m.Get() })
	assert.PanicsWithValue(t, "boom", func() { m.Get() })
	assert.Equal(t, 1, calls)
}

func TestSuspend_DefersConstruction(t *testing.T) {
	calls := 0
	m := lazy.Suspend(func() lazy.Eval[int] {
		calls++
		return lazy.Now(1)
	})

	require.Equal(t, 0, calls)

	assert.Equal(t, 1, m.Get())
	assert.Equal(t, 1, m.Get())
	// unmemoized: the construction side effect runs on every Get
	assert.Equal(t, 2, calls)
}

func TestUnit_SharedStrict(t *testing.T) {
	assert.Equal(t, struct{}{}, lazy.Unit().Get())
	assert.Equal(t, lazy.Unit(), lazy.Unit())
}

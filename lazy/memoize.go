package lazy

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Memoize returns a computation guaranteed idempotent: repeated evaluation
// yields the same value, or re-raises the same panic, as the first one.
// It never mutates the receiver.
//
// Strict and already-memoized computations are returned unchanged. A
// repeatable computation keeps its producer but loses repeatability. Any
// composite chain is wrapped so that its first evaluation runs the whole
// chain through the trampoline and caches the final result.
func (m Eval[A]) Memoize() Eval[A] {
	switch n := m.n.(type) {
	case *strictNode, *memoNode:
		return m
	case *alwaysNode:
		return Eval[A]{n: &memoNode{produce: n.produce}}
	default:
		inner := m.n
		return Eval[A]{n: &memoNode{produce: func() Erased {
			return run(inner)
		}}}
	}
}

// timedCell caches one result for a bounded validity window.
// Unlike a memo cell it never caches a panic: a failed fill leaves the cell
// empty and the next demand retries.
type timedCell struct {
	ttl    time.Duration
	value  Erased
	valid  timespan.TimeSpan
	filled bool
}

func (c *timedCell) get(fill func() Erased) Erased {
	now := time.Now()
	if c.filled && c.valid.Contains(now) {
		return c.value
	}
	c.filled = false
	c.value = fill()
	c.valid = timespan.BetweenTimes(now, now.Add(c.ttl))
	c.filled = true
	return c.value
}

// MemoizeFor returns a repeatable computation whose result stays cached for
// ttl after each fresh evaluation. Within the validity window demands are
// served from the cache; after it expires the next demand re-evaluates m in
// full. ttl must be positive.
//
// Like the rest of the package this assumes a single evaluator at a time.
func MemoizeFor[A any](m Eval[A], ttl time.Duration) Eval[A] {
	if ttl <= 0 {
		panic("lazy: MemoizeFor requires a positive ttl")
	}
	inner := m.n
	cell := &timedCell{ttl: ttl}
	return Eval[A]{n: &alwaysNode{produce: func() Erased {
		return cell.get(func() Erased { return run(inner) })
	}}}
}

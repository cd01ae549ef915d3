// Package trace wires structured logging around deferred evaluations.
//
// Tracing is deliberately kept out of the core: the engine stays pure and a
// traced computation is just another computation. Wrap the chains you care
// about and leave the rest untouched.
package trace

import (
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/lazy_ive_go/lazy"
	"go.uber.org/zap"
)

// Traced wraps m so that every evaluation logs a start and a completion
// event through logger at debug level, tagged with name and a fresh
// evaluation id. The wrapper is repeatable-transparent: each Get of the
// result evaluates m once and logs once, and memoizing the result memoizes
// the traced evaluation as a whole.
//
// A panic during evaluation propagates as usual; no completion event is
// logged for it.
func Traced[A any](m lazy.Eval[A], logger *zap.Logger, name string) lazy.Eval[A] {
	return lazy.Suspend(func() lazy.Eval[A] {
		evalId := uuid.New().String()
		started := time.Now()
		logger.Debug("evaluation started",
			zap.String("name", name),
			zap.String("evalId", evalId),
		)
		return lazy.Map(m, func(a A) A {
			logger.Debug("evaluation finished",
				zap.String("name", name),
				zap.String("evalId", evalId),
				zap.Duration("elapsed", time.Since(started)),
			)
			return a
		})
	})
}

// TracedProducer wraps a producer so each invocation logs through logger.
// Useful under [lazy.Always] or [lazy.Once] when the interesting boundary
// is the producer itself rather than the whole chain.
func TracedProducer[A any](produce func() A, logger *zap.Logger, name string) func() A {
	return func() A {
		started := time.Now()
		logger.Debug("producer invoked", zap.String("name", name))
		a := produce()
		logger.Debug("producer returned",
			zap.String("name", name),
			zap.Duration("elapsed", time.Since(started)),
		)
		return a
	}
}

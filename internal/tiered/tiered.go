// Package tiered implements the tiered-lookup pattern shared by the
// weather, market-price and yield-prediction endpoints: try the
// authoritative upstream, then a generative best-effort estimate, then a
// static default. A lookup never propagates an upstream failure; every
// result is tagged with the tier that produced it.
package tiered

import (
	"context"

	"github.com/rs/zerolog"
)

// Source identifies which tier produced a result.
type Source string

const (
	// SourcePrimary marks data from the authoritative upstream source.
	SourcePrimary Source = "primary"

	// SourceInferred marks a best-effort generative estimate.
	SourceInferred Source = "inferred"

	// SourceFallback marks a synthesized or static default.
	SourceFallback Source = "fallback"
)

// Result wraps a looked-up value with its originating tier. Value has the
// same shape regardless of tier; callers branch on Source only.
type Result[T any] struct {
	Value  T
	Source Source
}

// Chain describes the tiers of a lookup. Tiers run strictly sequentially:
// a tier is attempted only after the previous one is confirmed failed, so
// paid or rate-limited services are never called speculatively. There are
// no automatic retries at this level; a failed tier is abandoned
// immediately in favor of the next.
type Chain[T any] struct {
	// Name identifies the lookup for logging.
	Name string

	// Primary calls the authoritative upstream source.
	Primary func(ctx context.Context) (T, error)

	// Inferred produces a generative best-effort estimate. Optional.
	Inferred func(ctx context.Context) (T, error)

	// Fallback produces a static or synthesized default. It must always
	// succeed; Lookup panics on construction misuse if it is nil.
	Fallback func() T

	// Logger for tier transitions.
	Logger zerolog.Logger
}

// Lookup runs the chain and always returns a value.
func (c Chain[T]) Lookup(ctx context.Context) Result[T] {
	if c.Primary != nil {
		value, err := c.Primary(ctx)
		if err == nil {
			return Result[T]{Value: value, Source: SourcePrimary}
		}
		c.Logger.Warn().
			Err(err).
			Str("lookup", c.Name).
			Str("tier", string(SourcePrimary)).
			Msg("tier failed, degrading")
	}

	if c.Inferred != nil {
		value, err := c.Inferred(ctx)
		if err == nil {
			return Result[T]{Value: value, Source: SourceInferred}
		}
		c.Logger.Warn().
			Err(err).
			Str("lookup", c.Name).
			Str("tier", string(SourceInferred)).
			Msg("tier failed, degrading")
	}

	return Result[T]{Value: c.Fallback(), Source: SourceFallback}
}

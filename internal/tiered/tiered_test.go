package tiered_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agrisense/agrisense/internal/tiered"
)

func TestLookupPrimarySucceeds(t *testing.T) {
	inferredCalled := false
	chain := tiered.Chain[string]{
		Name:   "test",
		Logger: zerolog.Nop(),
		Primary: func(_ context.Context) (string, error) {
			return "live", nil
		},
		Inferred: func(_ context.Context) (string, error) {
			inferredCalled = true
			return "estimate", nil
		},
		Fallback: func() string { return "default" },
	}

	result := chain.Lookup(context.Background())

	assert.Equal(t, "live", result.Value)
	assert.Equal(t, tiered.SourcePrimary, result.Source)
	assert.False(t, inferredCalled, "inferred tier must not run when primary succeeds")
}

func TestLookupDegradesToInferred(t *testing.T) {
	chain := tiered.Chain[string]{
		Name:   "test",
		Logger: zerolog.Nop(),
		Primary: func(_ context.Context) (string, error) {
			return "", errors.New("upstream down")
		},
		Inferred: func(_ context.Context) (string, error) {
			return "estimate", nil
		},
		Fallback: func() string { return "default" },
	}

	result := chain.Lookup(context.Background())

	assert.Equal(t, "estimate", result.Value)
	assert.Equal(t, tiered.SourceInferred, result.Source)
}

func TestLookupDegradesToFallback(t *testing.T) {
	chain := tiered.Chain[string]{
		Name:   "test",
		Logger: zerolog.Nop(),
		Primary: func(_ context.Context) (string, error) {
			return "", errors.New("upstream down")
		},
		Inferred: func(_ context.Context) (string, error) {
			return "", errors.New("model down")
		},
		Fallback: func() string { return "default" },
	}

	result := chain.Lookup(context.Background())

	assert.Equal(t, "default", result.Value)
	assert.Equal(t, tiered.SourceFallback, result.Source)
}

func TestLookupSkipsUnconfiguredTiers(t *testing.T) {
	chain := tiered.Chain[int]{
		Name:     "test",
		Logger:   zerolog.Nop(),
		Fallback: func() int { return 42 },
	}

	result := chain.Lookup(context.Background())

	assert.Equal(t, 42, result.Value)
	assert.Equal(t, tiered.SourceFallback, result.Source)
}

func TestLookupPrimaryOnlyDoesNotRetry(t *testing.T) {
	calls := 0
	chain := tiered.Chain[string]{
		Name:   "test",
		Logger: zerolog.Nop(),
		Primary: func(_ context.Context) (string, error) {
			calls++
			return "", errors.New("flaky")
		},
		Fallback: func() string { return "default" },
	}

	result := chain.Lookup(context.Background())

	assert.Equal(t, 1, calls, "a failed tier is abandoned, not retried")
	assert.Equal(t, tiered.SourceFallback, result.Source)
}

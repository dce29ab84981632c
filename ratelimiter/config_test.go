package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	require.PanicsWithValue("rate limiter limit must be 0 or greater", func() {
		Opts{Limit: -1, Burst: 1}.validate()
	})

	require.PanicsWithValue("rate limiter burst must be 1 or greater", func() {
		Opts{Limit: Every(10 * time.Millisecond), Burst: 0}.validate()
	})

	require.PanicsWithValue("rate limiter max queue depth must be 0 or greater", func() {
		Opts{Limit: Every(10 * time.Millisecond), Burst: 1, MaxQueueDepth: -1}.validate()
	})

	require.NotPanics(func() {
		Opts{Limit: Inf, Burst: 1}.validate()
	})
}

func TestEvery(t *testing.T) {
	require.Equal(t, Limit(10), Every(100*time.Millisecond))
}

func TestNewValidates(t *testing.T) {
	run := func(ctx context.Context, n int) (int, error) {
		return n, nil
	}

	require.PanicsWithValue(t, "rate limiter burst must be 1 or greater", func() {
		New(Opts{Limit: Inf}, run)
	})
}

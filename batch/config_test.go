package batch

import (
	"testing"
	"time"

	"github.com/abevier/flip/results"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	require.PanicsWithValue("maximum batch size must be greater than 1", func() {
		Opts{MaxSize: 1, MaxLinger: 10 * time.Millisecond}.validate()
	})

	require.PanicsWithValue("batch linger must be greater than 0", func() {
		Opts{MaxSize: 3}.validate()
	})

	require.NotPanics(func() {
		Opts{MaxSize: 2, MaxLinger: time.Millisecond}.validate()
	})
}

func TestNewExecutorValidates(t *testing.T) {
	run := func(items []int) ([]results.Result[int, error], error) {
		return nil, nil
	}

	require.PanicsWithValue(t, "batch linger must be greater than 0", func() {
		NewExecutor(Opts{MaxSize: 3, MaxLinger: -time.Second}, run)
	})
}

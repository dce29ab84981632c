package submit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSubmitFunction(t *testing.T) {
	req := require.New(t)

	f := GetSubmitFunction[int, int](BlockWhenFull)
	req.NotNil(f)

	f = GetSubmitFunction[int, int](ErrorWhenFull)
	req.NotNil(f)
}

func TestGetSubmitFunctionPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("GetSubmitFunction did not panic")
		}
	}()

	GetSubmitFunction[int, int](-1)
}

func TestJobResolveAndReject(t *testing.T) {
	req := require.New(t)

	j := NewJob[string, int](context.Background(), "task")
	j.Resolve(4, nil)
	j.Reject(ErrQueueFull) // ignored, first completion wins

	r, err := j.Future.Get(context.Background())
	req.NoError(err)
	req.Equal(4, r.V())

	testErr := errors.New("run failed")
	j = NewJob[string, int](context.Background(), "task")
	j.Resolve(4, testErr)

	r, err = j.Future.Get(context.Background())
	req.NoError(err)
	req.ErrorIs(r.E(), testErr)

	j = NewJob[string, int](context.Background(), "task")
	j.Reject(ErrQueueFull)

	r, err = j.Future.Get(context.Background())
	req.NoError(err)
	req.ErrorIs(r.E(), ErrQueueFull)
}

func TestBlockWhenFullStrategy(t *testing.T) {
	req := require.New(t)

	c := make(chan Job[int, int])

	// Test cancellation
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	j := NewJob[int, int](ctx, 1)
	err := blockWhenFullStrategy(c, j)
	req.ErrorIs(err, context.Canceled)

	// Test consumption
	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		for v := range c {
			v.Resolve(42, nil)
		}
	}()

	ctx = context.Background()
	j = NewJob[int, int](ctx, 1)

	err = blockWhenFullStrategy(c, j)
	req.NoError(err)

	r, err := j.Future.Get(ctx)
	req.NoError(err)
	req.Equal(42, r.V())

	close(c)
	wg.Wait()
}

func TestErrorWhenFull(t *testing.T) {
	req := require.New(t)

	c := make(chan Job[int, int], 1)

	j := NewJob[int, int](context.Background(), 1)
	req.NoError(errorWhenFullStrategy(c, j))

	j2 := NewJob[int, int](context.Background(), 2)
	req.ErrorIs(errorWhenFullStrategy(c, j2), ErrQueueFull)

	queued := <-c
	req.Equal(1, queued.Task)
}

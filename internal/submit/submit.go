// Package submit holds the job type handed from a runner's Submit to its workers and the strategies
// used to enqueue jobs when the queue is full.
package submit

import (
	"context"
	"errors"
	"log"

	"github.com/abevier/flip/futures"
	"github.com/abevier/flip/results"
)

var (
	ErrQueueFull = errors.New("task queue is full")
)

type FullQueueStrategy int

const (
	BlockWhenFull FullQueueStrategy = iota
	ErrorWhenFull
)

// Job carries a submitted task to a worker along with the pending Result the submitter is waiting on.
type Job[T any, R any] struct {
	Ctx    context.Context
	Task   T
	Future *futures.Future[results.Result[R, error]]
}

func NewJob[T any, R any](ctx context.Context, task T) Job[T, R] {
	return Job[T, R]{
		Ctx:    ctx,
		Task:   task,
		Future: futures.New[results.Result[R, error]](),
	}
}

// Resolve completes the job with the outcome of running its task.
func (j Job[T, R]) Resolve(val R, err error) {
	j.Future.Complete(results.New(val, err))
}

// Reject completes the job with err without the task having run.
func (j Job[T, R]) Reject(err error) {
	j.Future.Complete(results.Err[R](err))
}

type SubmitFunction[T any, R any] func(jobs chan<- Job[T, R], j Job[T, R]) error

func GetSubmitFunction[T any, R any](s FullQueueStrategy) SubmitFunction[T, R] {
	switch s {
	case BlockWhenFull:
		return blockWhenFullStrategy[T, R]
	case ErrorWhenFull:
		return errorWhenFullStrategy[T, R]
	default:
		log.Panicf("invalid submit strategy value %d", s)
	}
	return blockWhenFullStrategy[T, R]
}

func blockWhenFullStrategy[T any, R any](jobs chan<- Job[T, R], j Job[T, R]) error {
	select {
	case jobs <- j:
		return nil
	case <-j.Ctx.Done():
		return j.Ctx.Err()
	}
}

func errorWhenFullStrategy[T any, R any](jobs chan<- Job[T, R], j Job[T, R]) error {
	select {
	case jobs <- j:
		return nil
	default:
		return ErrQueueFull
	}
}

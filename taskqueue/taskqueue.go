// Package taskqueue runs fallible tasks on a fixed pool of workers and reports each outcome as a Result.
package taskqueue

import (
	"context"
	"errors"
	"sync"

	"github.com/abevier/flip/closewaiter"
	"github.com/abevier/flip/futures"
	"github.com/abevier/flip/internal/logging"
	"github.com/abevier/flip/internal/submit"
	"github.com/abevier/flip/results"
	"github.com/rs/zerolog"
)

var (
	ErrQueueFull = submit.ErrQueueFull
	ErrClosed    = errors.New("task queue is closed")
)

// RunFunction executes a single task.  The context carries the id of the worker running it,
// see WorkerIDFromContext.
type RunFunction[T any, R any] func(ctx context.Context, task T) (R, error)

// TaskQueue feeds submitted tasks to MaxWorkers workers.
type TaskQueue[T any, R any] struct {
	run    RunFunction[T, R]
	jobs   chan submit.Job[T, R]
	submit submit.SubmitFunction[T, R]

	cw      *closewaiter.CloseWaiter
	workers *sync.WaitGroup
	log     zerolog.Logger
}

// New starts a TaskQueue.  It panics if opts is invalid.
func New[T any, R any](opts Opts, run RunFunction[T, R]) *TaskQueue[T, R] {
	opts.validate()

	tq := &TaskQueue[T, R]{
		run:     run,
		jobs:    make(chan submit.Job[T, R], opts.MaxQueueDepth),
		submit:  submit.GetSubmitFunction[T, R](submit.FullQueueStrategy(opts.FullQueueStrategy)),
		cw:      closewaiter.New(),
		workers: &sync.WaitGroup{},
		log:     logging.Component(opts.Logger, "taskqueue"),
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		tq.workers.Add(1)
		go tq.worker(i)
	}

	return tq
}

func (tq *TaskQueue[T, R]) worker(id int) {
	defer tq.workers.Done()

	log := tq.log.With().Int("worker", id).Logger()

	for job := range tq.jobs {
		if err := job.Ctx.Err(); err != nil {
			log.Debug().Err(err).Msg("skipping task, context is done")
			job.Reject(err)
			continue
		}

		r, err := tq.run(withWorkerID(job.Ctx, id), job.Task)
		log.Debug().AnErr("task_error", err).Msg("task finished")
		job.Resolve(r, err)
	}

	log.Debug().Msg("worker stopped")
}

// Submit runs task on the queue and waits for its Result.  If ctx is done first the Result carries the
// context's error.
func (tq *TaskQueue[T, R]) Submit(ctx context.Context, task T) results.Result[R, error] {
	r, err := tq.SubmitF(ctx, task).Get(ctx)
	if err != nil {
		return results.Err[R](err)
	}
	return r
}

// SubmitF queues task and returns its pending Result without waiting.  The returned Future never fails;
// a full or closed queue is reported as a failed Result.
func (tq *TaskQueue[T, R]) SubmitF(ctx context.Context, task T) *futures.Future[results.Result[R, error]] {
	job := submit.NewJob[T, R](ctx, task)

	err := tq.cw.Do(func() {
		if err := tq.submit(tq.jobs, job); err != nil {
			job.Reject(err)
		}
	})
	if err != nil {
		job.Reject(ErrClosed)
	}

	return job.Future
}

// Close stops accepting tasks, lets the workers finish everything already queued and waits for them
// to exit.  Calls after the first also wait, then return ErrClosed.
func (tq *TaskQueue[T, R]) Close() error {
	err := tq.cw.Close(func() {
		close(tq.jobs)
	})

	tq.workers.Wait()

	if err != nil {
		return ErrClosed
	}
	return nil
}

// Package ratelimiter runs fallible tasks no faster than a configured rate and reports each outcome as a Result.
package ratelimiter

import (
	"context"
	"errors"

	"github.com/abevier/flip/closewaiter"
	"github.com/abevier/flip/futures"
	"github.com/abevier/flip/internal/logging"
	"github.com/abevier/flip/internal/submit"
	"github.com/abevier/flip/results"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var (
	ErrClosed = errors.New("rate limiter is closed")
)

type RunFunction[T any, R any] func(ctx context.Context, task T) (R, error)

type RateLimiter[T any, R any] struct {
	limiter *rate.Limiter
	jobs    chan submit.Job[T, R]

	submit submit.SubmitFunction[T, R]
	run    RunFunction[T, R]

	cw      *closewaiter.CloseWaiter
	stopped chan struct{}
	log     zerolog.Logger
}

// New starts a RateLimiter.  It panics if opts is invalid.
func New[T any, R any](opts Opts, run RunFunction[T, R]) *RateLimiter[T, R] {
	opts.validate()

	rl := &RateLimiter[T, R]{
		limiter: rate.NewLimiter(opts.Limit, opts.Burst),
		jobs:    make(chan submit.Job[T, R], opts.MaxQueueDepth),
		submit:  submit.GetSubmitFunction[T, R](submit.FullQueueStrategy(opts.FullQueueStrategy)),
		run:     run,
		cw:      closewaiter.New(),
		stopped: make(chan struct{}),
		log:     logging.Component(opts.Logger, "ratelimiter"),
	}

	go rl.dispatch()

	return rl
}

func (rl *RateLimiter[T, R]) dispatch() {
	defer close(rl.stopped)

	for job := range rl.jobs {
		if err := rl.limiter.Wait(job.Ctx); err != nil {
			rl.log.Debug().Err(err).Msg("task dropped while waiting for a token")
			job.Reject(err)
			continue
		}

		rl.log.Debug().Msg("task released")
		go rl.runJob(job)
	}
}

func (rl *RateLimiter[T, R]) runJob(job submit.Job[T, R]) {
	r, err := rl.run(job.Ctx, job.Task)
	job.Resolve(r, err)
}

// Submit runs task once the limiter allows it and waits for its Result.  If ctx is done first the
// Result carries the context's error.
func (rl *RateLimiter[T, R]) Submit(ctx context.Context, task T) results.Result[R, error] {
	r, err := rl.SubmitF(ctx, task).Get(ctx)
	if err != nil {
		return results.Err[R](err)
	}
	return r
}

// SubmitF queues task and returns its pending Result without waiting.  The returned Future never fails.
func (rl *RateLimiter[T, R]) SubmitF(ctx context.Context, task T) *futures.Future[results.Result[R, error]] {
	job := submit.NewJob[T, R](ctx, task)

	err := rl.cw.Do(func() {
		if err := rl.submit(rl.jobs, job); err != nil {
			job.Reject(err)
		}
	})
	if err != nil {
		job.Reject(ErrClosed)
	}

	return job.Future
}

// Close stops accepting tasks and waits until every queued task has been released to run.
// It does not wait for released tasks to finish.  Calls after the first also wait, then return ErrClosed.
func (rl *RateLimiter[T, R]) Close() error {
	err := rl.cw.Close(func() {
		close(rl.jobs)
	})

	<-rl.stopped

	if err != nil {
		return ErrClosed
	}
	return nil
}

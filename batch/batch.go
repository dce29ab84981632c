// Package batch groups individually submitted items into batches, runs each batch with a single call
// and hands every submitter the Result for its own item.
package batch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abevier/flip/closewaiter"
	"github.com/abevier/flip/futures"
	"github.com/abevier/flip/internal/logging"
	"github.com/abevier/flip/results"
	"github.com/rs/zerolog"
)

var (
	// ErrBatchResultMismatch is the error every item of a batch receives when the RunBatchFunction
	// returns a different number of Results than items it was given.
	ErrBatchResultMismatch = errors.New("batch function returned a different number of results than items")
	ErrClosed              = errors.New("batch executor is closed")
)

// RunBatchFunction runs a batch of items and returns one Result per item, in the same order.
// Returning an error fails every item of the batch with that error.
type RunBatchFunction[T any, R any] func(items []T) ([]results.Result[R, error], error)

type batch[T any, R any] struct {
	id      int
	items   []T
	pending []*futures.Future[results.Result[R, error]]
	timer   *time.Timer
}

func (b *batch[T, R]) add(item T) *futures.Future[results.Result[R, error]] {
	f := futures.New[results.Result[R, error]]()
	b.items = append(b.items, item)
	b.pending = append(b.pending, f)
	return f
}

func (b *batch[T, R]) fail(err error) {
	for _, f := range b.pending {
		f.Complete(results.Err[R](err))
	}
}

type Executor[T any, R any] struct {
	m            sync.Mutex
	sequenceNum  int
	currentBatch *batch[T, R]

	run       RunBatchFunction[T, R]
	maxSize   int
	maxLinger time.Duration

	cw      *closewaiter.CloseWaiter
	running sync.WaitGroup
	log     zerolog.Logger
}

// NewExecutor creates an Executor.  It panics if opts is invalid.
func NewExecutor[T any, R any](opts Opts, run RunBatchFunction[T, R]) *Executor[T, R] {
	opts.validate()

	return &Executor[T, R]{
		run:       run,
		maxSize:   opts.MaxSize,
		maxLinger: opts.MaxLinger,
		cw:        closewaiter.New(),
		log:       logging.Component(opts.Logger, "batch"),
	}
}

// Submit adds item to the current batch and waits for its Result.  If ctx is done first the Result
// carries the context's error; the item itself stays in its batch.
func (be *Executor[T, R]) Submit(ctx context.Context, item T) results.Result[R, error] {
	if err := ctx.Err(); err != nil {
		return results.Err[R](err)
	}

	r, err := be.SubmitF(item).Get(ctx)
	if err != nil {
		return results.Err[R](err)
	}
	return r
}

// SubmitF adds item to the current batch and returns its pending Result.  The returned Future never fails.
func (be *Executor[T, R]) SubmitF(item T) *futures.Future[results.Result[R, error]] {
	var f *futures.Future[results.Result[R, error]]

	err := be.cw.Do(func() {
		f = be.addItem(item)
	})
	if err != nil {
		return futures.Completed(results.Err[R](ErrClosed))
	}

	return f
}

func (be *Executor[T, R]) addItem(item T) *futures.Future[results.Result[R, error]] {
	be.m.Lock()
	defer be.m.Unlock()

	if be.currentBatch == nil {
		be.currentBatch = be.newBatch()
	}
	f := be.currentBatch.add(item)

	if len(be.currentBatch.items) >= be.maxSize {
		be.flushLocked()
	}

	return f
}

func (be *Executor[T, R]) newBatch() *batch[T, R] {
	be.sequenceNum++

	b := &batch[T, R]{
		id:    be.sequenceNum,
		items: make([]T, 0, be.maxSize),
	}

	id := b.id
	b.timer = time.AfterFunc(be.maxLinger, func() {
		be.expireBatch(id)
	})

	return b
}

func (be *Executor[T, R]) expireBatch(batchID int) {
	be.m.Lock()
	defer be.m.Unlock()

	if be.currentBatch != nil && be.currentBatch.id == batchID {
		be.flushLocked()
	}
}

// flushLocked hands the current batch to a new goroutine.  be.m must be held.
func (be *Executor[T, R]) flushLocked() {
	b := be.currentBatch
	be.currentBatch = nil
	b.timer.Stop()

	be.running.Add(1)
	go func() {
		defer be.running.Done()
		be.runBatch(b)
	}()
}

func (be *Executor[T, R]) runBatch(b *batch[T, R]) {
	log := be.log.With().Int("batch", b.id).Int("size", len(b.items)).Logger()
	log.Debug().Msg("running batch")

	res, err := be.run(b.items)
	if err != nil {
		log.Debug().Err(err).Msg("batch failed")
		b.fail(err)
		return
	}

	if len(res) != len(b.items) {
		log.Error().Int("results", len(res)).Msg("batch function returned wrong number of results")
		b.fail(ErrBatchResultMismatch)
		return
	}

	for i, r := range res {
		b.pending[i].Complete(r)
	}
}

// Close stops accepting items, runs the partially filled batch if there is one and waits for every
// running batch to finish.  Calls after the first also wait, then return ErrClosed.
func (be *Executor[T, R]) Close() error {
	err := be.cw.Close(func() {
		be.m.Lock()
		defer be.m.Unlock()

		if be.currentBatch != nil {
			be.flushLocked()
		}
	})

	be.running.Wait()

	if err != nil {
		return ErrClosed
	}
	return nil
}

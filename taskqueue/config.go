package taskqueue

import (
	"github.com/abevier/flip/internal/submit"
	"github.com/rs/zerolog"
)

// FullQueueStrategy is the behavior of Submit when MaxQueueDepth tasks are already waiting.
type FullQueueStrategy submit.FullQueueStrategy

const (
	// BlockWhenFull blocks the caller until there is room in the queue or its context is done.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(submit.BlockWhenFull)
	// ErrorWhenFull immediately fails the submitted task with ErrQueueFull.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(submit.ErrorWhenFull)
)

// Opts is used to configure a TaskQueue via the New function.
type Opts struct {
	// MaxWorkers is the number of tasks run concurrently.
	MaxWorkers int
	// MaxQueueDepth is the number of submitted tasks that can wait for a worker.
	MaxQueueDepth int
	// FullQueueStrategy determines what Submit does when MaxQueueDepth is exceeded.  Defaults to BlockWhenFull.
	FullQueueStrategy FullQueueStrategy
	// Logger receives debug events about workers.  Nothing is logged when it is nil.
	Logger *zerolog.Logger
}

func (o Opts) validate() {
	if o.MaxWorkers < 1 {
		panic("task queue max workers must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("task queue max queue depth must be 0 or greater")
	}
}

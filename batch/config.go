package batch

import (
	"time"

	"github.com/rs/zerolog"
)

// Opts is used to configure an Executor via the NewExecutor function.
type Opts struct {
	// MaxSize is the number of items that triggers an immediate run of the current batch.
	MaxSize int
	// MaxLinger is how long the first item of a batch waits for the batch to fill up.
	MaxLinger time.Duration
	// Logger receives debug events for every batch run.  Nothing is logged when it is nil.
	Logger *zerolog.Logger
}

func (o Opts) validate() {
	if o.MaxSize <= 1 {
		panic("maximum batch size must be greater than 1")
	}

	if o.MaxLinger <= 0 {
		panic("batch linger must be greater than 0")
	}
}

package ratelimiter

import (
	"time"

	"github.com/abevier/flip/internal/submit"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var (
	ErrQueueFull = submit.ErrQueueFull
)

// FullQueueStrategy is the behavior of Submit when MaxQueueDepth tasks are already waiting for a token.
type FullQueueStrategy submit.FullQueueStrategy

const (
	// BlockWhenFull exerts back pressure by blocking the caller when too many items have been submitted.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(submit.BlockWhenFull)
	// ErrorWhenFull immediately fails the submitted task with ErrQueueFull when too many items have been submitted.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(submit.ErrorWhenFull)
)

// A rate limit expressed as N requests per second
type Limit = rate.Limit

// Inf is the rate limit that allows every task through immediately.
const Inf = rate.Inf

// Every converts the provided duration into a number of requests per second
// for instance Every(100 * time.Millisecond) will yield 10 requests per second
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts is used to configure a RateLimiter via the New function.
type Opts struct {
	// Limit is the rate limit expressed in requests per second.
	Limit Limit
	// Burst is the size of the Token Bucket
	Burst int
	// MaxQueueDepth controls the number of outstanding tasks that can be submitted to the rate limiter.
	MaxQueueDepth int
	// FullQueueStrategy determines the rate limiter's behavior when the MaxQueueDepth is exceeded.
	// By default the rate limiter will block the caller.
	FullQueueStrategy FullQueueStrategy
	// Logger receives debug events for every task released by the limiter.  Nothing is logged when it is nil.
	Logger *zerolog.Logger
}

func (o Opts) validate() {
	if o.Limit < 0 {
		panic("rate limiter limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("rate limiter burst must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("rate limiter max queue depth must be 0 or greater")
	}
}

package taskqueue

import (
	"context"
	"strconv"
)

type workerIDKey struct{}

func withWorkerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerIDKey{}, "worker-"+strconv.Itoa(id))
}

// WorkerIDFromContext returns the id of the worker running the current task, in the form "worker-N".
// It is only set on contexts passed to a RunFunction.
func WorkerIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(workerIDKey{}).(string)
	return v, ok
}

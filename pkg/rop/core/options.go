package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// ProcessOptions controls what cancellation handlers do with the results
// still queued when a pipeline is cancelled.
type ProcessOptions struct {
	ProcessRemaining bool
}

func option[T any](ctx context.Context, key OptionKey) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: MaxLimitOption{Value: maxWorkers}})
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

// GetWorkerMaxCount returns the worker count carried by ctx, or
// defaultMaxWorkers when none is set or the stored one is not positive.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	if o, ok := option[WorkerOptions](ctx, WorkerOptionKey); ok && o.MaxCount.Value > 0 {
		return o.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	if o, ok := option[ProcessOptions](ctx, ProcessOptionKey); ok {
		return o.ProcessRemaining
	}
	return defaultProcessRemaining
}

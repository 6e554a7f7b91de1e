// Package observability provides hooks for instrumenting the conversion
// pipeline.
//
// Hooks let callers observe stage timings and outcomes without the pipeline
// depending on any particular metrics or tracing backend. They are passed to
// the runner explicitly; there is no global registry.
//
//	runner := pipeline.NewRunner(logger)
//	runner.Hooks = myHooks
package observability

import (
	"context"
	"time"
)

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	// OnReadComplete fires after the inventory was read, err is the read failure if any.
	OnReadComplete(ctx context.Context, path string, rows int, duration time.Duration, err error)

	// OnGroupComplete fires after entries were grouped by network.
	OnGroupComplete(ctx context.Context, entries, groups, dropped int, duration time.Duration)

	// OnBuildComplete fires after the scene document was laid out.
	OnBuildComplete(ctx context.Context, shapes int, duration time.Duration)

	// OnWriteComplete fires after an output file was written (or failed to be).
	OnWriteComplete(ctx context.Context, path string, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnReadComplete(context.Context, string, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnGroupComplete(context.Context, int, int, int, time.Duration)      {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, time.Duration)                {}
func (NoopPipelineHooks) OnWriteComplete(context.Context, string, int, time.Duration, error) {}

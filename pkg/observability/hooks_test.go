package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	var h PipelineHooks = NoopPipelineHooks{}
	h.OnReadComplete(ctx, "hosts.csv", 10, time.Millisecond, nil)
	h.OnGroupComplete(ctx, 12, 3, 1, time.Millisecond)
	h.OnBuildComplete(ctx, 11, time.Millisecond)
	h.OnWriteComplete(ctx, "out.json", 2048, time.Millisecond, errors.New("disk full"))
}

package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Conversion finished (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports pipeline stage timings at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnReadComplete(_ context.Context, path string, rows int, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.logger.Debug("stage read", "path", path, "rows", rows, "duration", d)
}

func (h logHooks) OnGroupComplete(_ context.Context, entries, groups, dropped int, d time.Duration) {
	h.logger.Debug("stage group", "entries", entries, "networks", groups, "dropped", dropped, "duration", d)
}

func (h logHooks) OnBuildComplete(_ context.Context, shapes int, d time.Duration) {
	h.logger.Debug("stage build", "shapes", shapes, "duration", d)
}

func (h logHooks) OnWriteComplete(_ context.Context, path string, size int, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.logger.Debug("stage write", "path", path, "bytes", size, "duration", d)
}

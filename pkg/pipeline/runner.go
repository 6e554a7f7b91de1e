package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netgliffy/pkg/errors"
	"github.com/matzehuels/netgliffy/pkg/gliffy"
	"github.com/matzehuels/netgliffy/pkg/inventory"
	"github.com/matzehuels/netgliffy/pkg/observability"
	"github.com/matzehuels/netgliffy/pkg/render/nodelink"
	"github.com/matzehuels/netgliffy/pkg/subnet"
)

// Runner executes the conversion pipeline.
//
// The Runner holds no per-run state; all data flows through arguments and
// the returned Result.
type Runner struct {
	Logger *log.Logger
	Hooks  observability.PipelineHooks
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger: logger,
		Hooks:  observability.NoopPipelineHooks{},
	}
}

// Execute reads opts.Input, converts it and writes opts.Output (and the
// preview, if requested). Nothing is written unless at least one device
// survives grouping.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	readStart := time.Now()
	rows, err := r.Read(ctx, opts.Input)
	readTime := time.Since(readStart)
	if err != nil {
		opts.Logger.Error("cannot read inventory, no devices processed", "input", opts.Input, "err", err)
		return nil, err
	}

	result, err := r.Convert(ctx, rows, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.ReadTime = readTime

	if err := r.Write(ctx, result, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// Read loads the inventory rows at path.
func (r *Runner) Read(ctx context.Context, path string) ([]inventory.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := inventory.ReadFile(path)
	r.hooks().OnReadComplete(ctx, path, len(rows), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("read inventory", "input", path, "rows", len(rows))
	return rows, nil
}

// Convert normalizes, groups and lays out rows. It returns an EMPTY_RESULT
// error when no entry has a valid network and an INVALID_CONFIG error for an
// unusable layout.
func (r *Runner) Convert(ctx context.Context, rows []inventory.RawRow, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetLayoutDefaults()
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	result := &Result{}
	result.Stats.Rows = len(rows)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	groupStart := time.Now()
	entries := inventory.Normalize(rows)
	grouped := subnet.Group(entries)
	result.Stats.GroupTime = time.Since(groupStart)
	result.Stats.Entries = len(entries)
	result.Stats.Dropped = len(grouped.Warnings)
	result.Stats.Groups = len(grouped.Groups)
	result.Groups = grouped.Groups
	result.Warnings = grouped.Warnings
	r.hooks().OnGroupComplete(ctx, len(entries), len(grouped.Groups), len(grouped.Warnings), result.Stats.GroupTime)

	for _, w := range grouped.Warnings {
		logger.Warn("skipping invalid network", "line", w.Entry.Line, "name", w.Entry.Name, "ip", w.Entry.IP, "cidr", w.Entry.CIDR, "err", errors.UserMessage(w.Err))
	}
	for _, g := range grouped.Groups {
		logger.Debug("network", "network", g.String(), "devices", g.Len())
	}
	logger.Info("grouped devices",
		"rows", result.Stats.Rows,
		"entries", result.Stats.Entries,
		"networks", result.Stats.Groups,
		"dropped", result.Stats.Dropped)

	if len(grouped.Groups) == 0 {
		return result, errors.New(errors.ErrCodeEmptyResult, "no valid IP addresses found in inventory")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buildStart := time.Now()
	result.Document = gliffy.Build(grouped.Groups, opts.Layout)
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Shapes = len(result.Document.Shapes)
	r.hooks().OnBuildComplete(ctx, result.Stats.Shapes, result.Stats.BuildTime)

	logger.Debug("built scene", "shapes", result.Stats.Shapes, "duration", result.Stats.BuildTime)
	return result, nil
}

// Write encodes the document to opts.Output and, when opts.Preview is set,
// renders the subnet preview. A failed preview does not fail the write; it is
// logged and recorded in result.PreviewErr.
func (r *Runner) Write(ctx context.Context, result *Result, opts Options) error {
	r.applyLogger(&opts)
	if err := ctx.Err(); err != nil {
		return err
	}

	writeStart := time.Now()
	data, err := gliffy.Marshal(result.Document)
	if err == nil {
		err = writeFile(opts.Output, data)
	}
	result.Stats.WriteTime = time.Since(writeStart)
	r.hooks().OnWriteComplete(ctx, opts.Output, len(data), result.Stats.WriteTime, err)
	if err != nil {
		return err
	}
	opts.Logger.Info("wrote gliffy document", "output", opts.Output, "shapes", result.Stats.Shapes, "bytes", len(data))

	if opts.Preview == "" {
		return nil
	}
	if err := r.writePreview(ctx, result, opts); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		opts.Logger.Warn("subnet preview not written", "preview", opts.Preview, "err", errors.UserMessage(err))
		result.PreviewErr = err
	}
	return nil
}

func (r *Runner) writePreview(ctx context.Context, result *Result, opts Options) error {
	start := time.Now()
	dot := nodelink.ToDOT(result.Groups, nodelink.Options{Detailed: opts.DetailedPreview})
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeOutputWrite, err, "render preview")
	} else {
		err = writeFile(opts.Preview, svg)
	}
	r.hooks().OnWriteComplete(ctx, opts.Preview, len(svg), time.Since(start), err)
	if err != nil {
		return err
	}
	opts.Logger.Info("wrote subnet preview", "preview", opts.Preview, "networks", len(result.Groups))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write %s", path)
	}
	return nil
}

func (r *Runner) hooks() observability.PipelineHooks {
	if r.Hooks == nil {
		return observability.NoopPipelineHooks{}
	}
	return r.Hooks
}

// applyLogger sets opts.Logger to the runner's logger if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

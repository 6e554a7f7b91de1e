package cli

import (
	"context"

	"github.com/matzehuels/netgliffy/pkg/config"
	"github.com/matzehuels/netgliffy/pkg/errors"
	"github.com/matzehuels/netgliffy/pkg/pipeline"
)

// convertOpts holds the command-line flags of the root command.
type convertOpts struct {
	input    string
	output   string
	preview  string // overrides the config file's preview path
	detailed bool
	config   string
}

// loadConfig returns the file configuration, or defaults when no file is given.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// runConvert executes the pipeline and reports the outcome on c.Out.
func (c *CLI) runConvert(ctx context.Context, opts convertOpts) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if opts.config != "" {
		c.Logger.Debug("loaded config", "path", opts.config)
	}

	popts := pipeline.Options{
		Input:           opts.input,
		Output:          opts.output,
		Preview:         cfg.Preview,
		DetailedPreview: cfg.DetailedPreview || opts.detailed,
		Layout:          cfg.Layout,
		Logger:          c.Logger,
	}
	if opts.preview != "" {
		popts.Preview = opts.preview
	}

	runner := pipeline.NewRunner(c.Logger)
	runner.Hooks = logHooks{c.Logger}

	p := newProgress(c.Logger)
	c.Logger.Infof("Converting %s", opts.input)
	res, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	p.done("Conversion finished")

	if n := len(res.Warnings); n > 0 {
		printWarning(c.Out, "Skipped %d invalid %s", n, plural(n, "entry", "entries"))
	}
	printSuccess(c.Out, "Gliffy JSON exported to %s", popts.Output)
	printStats(c.Out, res.Stats)
	switch {
	case res.PreviewErr != nil:
		printWarning(c.Out, "Preview not written: %s", errors.UserMessage(res.PreviewErr))
	case popts.Preview != "":
		printFile(c.Out, popts.Preview)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

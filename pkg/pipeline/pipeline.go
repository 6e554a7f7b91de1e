// Package pipeline runs the inventory → Gliffy conversion.
//
// The pipeline consists of five strictly sequential stages:
//
//  1. Read: load the CSV inventory into raw rows
//  2. Normalize: expand rows into one entry per address
//  3. Group: assign entries to their networks, dropping invalid ones
//  4. Build: lay the groups out on the Gliffy grid
//  5. Write: encode the document once to the output path
//
// Each stage completes before the next begins. [Runner.Convert] runs stages
// 2-4 on rows already in memory and is what tests and other callers use when
// they do not need file I/O.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "hosts.csv",
//	    Output: "hosts.gliffy",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Shapes, "shapes")
//
// # Failures
//
// An unreadable inventory (SOURCE_UNREADABLE) or one without any valid
// device (EMPTY_RESULT) ends the run before anything is written. Invalid
// addresses are logged as warnings and skipped. A failed preview is reported
// in [Result.PreviewErr] and does not fail the run.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netgliffy/pkg/errors"
	"github.com/matzehuels/netgliffy/pkg/gliffy"
	"github.com/matzehuels/netgliffy/pkg/subnet"
)

// Options contains all configuration for a conversion run.
type Options struct {
	Input  string // CSV inventory path
	Output string // Gliffy JSON path

	// Preview is an optional SVG path for the Graphviz subnet preview.
	Preview         string
	DetailedPreview bool

	// Layout is the grid; the zero value means gliffy.DefaultLayout().
	Layout gliffy.Layout

	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the laid-out scene that was (or would be) written.
	Document gliffy.SceneDocument

	// Groups is the subnet grouping the document was built from.
	Groups []subnet.NetworkGroup

	// Warnings lists the entries dropped during grouping.
	Warnings []subnet.Warning

	// PreviewErr is set when a requested preview could not be written. The
	// Gliffy document is written regardless.
	PreviewErr error

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows    int
	Entries int
	Dropped int
	Groups  int
	Shapes  int

	ReadTime  time.Duration
	GroupTime time.Duration
	BuildTime time.Duration
	WriteTime time.Duration
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path is required")
	}
	if o.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output path is required")
	}
	o.SetLayoutDefaults()
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults fills in the default grid and a discarding logger.
func (o *Options) SetLayoutDefaults() {
	if o.Layout == (gliffy.Layout{}) {
		o.Layout = gliffy.DefaultLayout()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Package cli implements the netgliffy command-line interface.
//
// netgliffy has a single command that converts a CSV device inventory into a
// Gliffy diagram:
//
//	netgliffy -i hosts.csv -o hosts.gliffy
//	netgliffy -i hosts.csv -o hosts.gliffy --preview subnets.svg -c netgliffy.toml
//
// # Logging
//
// Progress is logged to stderr with charmbracelet/log; --verbose (-v)
// switches to debug level and adds per-stage timings. The final result is
// printed as a styled status line.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/netgliffy/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "netgliffy"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives status lines; defaults to stdout.
	Out io.Writer
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	opts := convertOpts{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Convert a CSV device inventory into a Gliffy network diagram",
		Long:          `netgliffy reads a CSV list of network devices, groups them by subnet and writes a Gliffy diagram with one router shape per address.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.input, "input", "i", "", "path to the input CSV file")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "path to the output Gliffy JSON file")
	root.Flags().StringVar(&opts.preview, "preview", "", "also render a subnet preview SVG to this path")
	root.Flags().BoolVar(&opts.detailed, "detailed-preview", false, "include prefix length and URL in preview labels")
	root.Flags().StringVarP(&opts.config, "config", "c", "", "path to a TOML configuration file")
	_ = root.MarkFlagRequired("input")
	_ = root.MarkFlagRequired("output")
	_ = root.MarkFlagFilename("input", "csv")
	_ = root.MarkFlagFilename("output", "json", "gliffy")
	_ = root.MarkFlagFilename("config", "toml")

	return root
}

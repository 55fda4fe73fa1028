// Package cli implements the fxrender command-line interface.
//
// # Commands
//
//   - render: build a filter graph from flags or a TOML file and write a PNG
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The charm
// logger is installed as the ggfx library logger, so graph diagnostics such
// as singular transforms show up on stderr.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggfx"
)

// Execute runs the fxrender CLI and returns an error if any command fails.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Log output goes to stderr.
func newRootCmd(stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "fxrender",
		Short:        "fxrender renders image filter graphs to PNG",
		Long:         `fxrender builds a turbulence filter graph, optionally colour-matrixed and blurred, composites it over a background and writes the result as a PNG.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)
			ggfx.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(versionString() + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())
	return root
}

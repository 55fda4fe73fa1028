package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggfx"
)

var (
	version = ggfx.Version // semantic version, overridable at build time
	commit  string         // git commit SHA
	date    string         // build timestamp
)

// SetVersion sets the version information shown by --version and the
// version command. main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

func versionString() string {
	s := "fxrender " + version
	if commit != "" {
		s += "\ncommit: " + commit
	}
	if date != "" {
		s += "\nbuilt: " + date
	}
	return s
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}

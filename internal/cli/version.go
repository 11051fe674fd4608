package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the crimereport release. Overridden at build time with
// -ldflags "-X github.com/flyinginsectsunpig/crimereport/internal/cli.Version=...".
var Version = "0.1.0"

const modulePath = "github.com/flyinginsectsunpig/crimereport"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the crimereport version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "crimereport v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}

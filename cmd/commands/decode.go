package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/numheadings/internal/cli"
	"github.com/pluqqy/numheadings/pkg/settings"
)

// NewDecodeCommand creates the decode command
func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <value>",
		Short: "Parse a compact settings string",
		Long: `Parse a "number headings" value and print the resulting settings.
Unknown parts are ignored and leave the default value in place.

Examples:
  numheadings decode "auto, first-level 2, max 4, _.1.A-"
  numheadings decode "I.1)" -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.NewCommandContext().OutputFormat()
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), format, newSettingsReport(settings.ParseCompact(args[0])))
		},
	}

	return cmd
}

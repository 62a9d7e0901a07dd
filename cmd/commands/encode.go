package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/numheadings/internal/cli"
	"github.com/pluqqy/numheadings/pkg/settings"
)

// NewEncodeCommand creates the encode command
func NewEncodeCommand() *cobra.Command {
	flags := &settingsFlags{}
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the compact settings string for the given flags",
		Long: `Build a "number headings" value from flags, starting from the fallback
settings in the config, and print it.

Examples:
  numheadings encode --auto --max 3 --separator ")"
  numheadings encode --skip-top-level --style-level-1 A --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			fallback, err := ctx.Fallback()
			if err != nil {
				return err
			}

			s, err := flags.apply(cmd.Flags(), fallback)
			if err != nil {
				return err
			}

			encoded := settings.Encode(s)
			fmt.Fprintln(cmd.OutOrStdout(), encoded)

			if copyToClipboard {
				if err := clipboard.WriteAll(settings.Line(s)); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				cli.PrintSuccess("Copied frontmatter line to clipboard")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the full frontmatter line to the clipboard")

	return cmd
}

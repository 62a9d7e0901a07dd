package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/numheadings/internal/cli"
	"github.com/pluqqy/numheadings/pkg/files"
	"github.com/pluqqy/numheadings/pkg/settings"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	flags := &settingsFlags{}

	cmd := &cobra.Command{
		Use:   "set <file>",
		Short: "Change heading numbering settings in a document",
		Long: `Change the heading numbering settings stored in a document's frontmatter.

Only the flags you pass are changed; every other setting keeps its current
value. The settings are always written in the compact "number headings"
form. A frontmatter block is created when the document has none.

Examples:
  # Number levels 2 to 4 automatically
  numheadings set notes.md --auto --first-level 2 --max 4

  # Use roman numerals followed by a dot for the top level
  numheadings set notes.md --style-level-1 I --separator .

  # Generate a table of contents under a heading
  numheadings set notes.md --contents "Table of Contents"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, args, flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func runSet(cmd *cobra.Command, args []string, flags *settingsFlags) error {
	ctx := cli.NewCommandContext()

	fallback, err := ctx.Fallback()
	if err != nil {
		return err
	}
	doc, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	current := settings.Decode(doc.FrontMatter, fallback)
	updated, err := flags.apply(cmd.Flags(), current)
	if err != nil {
		return err
	}

	if !anyChanged(cmd.Flags()) {
		cli.PrintInfo("No settings given; writing current settings in compact form")
	}

	if doc.FrontMatter == nil {
		ok, err := cli.Confirm(fmt.Sprintf("%s has no frontmatter. Create it?", doc.Path), true)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Nothing written")
			return nil
		}
	}

	if err := settings.Save(doc.FrontMatter, doc.Buffer, updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if err := files.WriteDocument(doc); err != nil {
		return err
	}

	cli.PrintSuccess("Updated %s", doc.Path)
	cli.PrintInfo("%s: %s", settings.Key, settings.Encode(updated))
	return nil
}

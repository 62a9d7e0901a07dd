package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/numheadings/internal/cli"
	"github.com/pluqqy/numheadings/pkg/document"
	"github.com/pluqqy/numheadings/pkg/settings"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Show the heading numbering settings of a document",
		Long: `Show the effective heading numbering settings of a markdown document.

Settings are read from the "number headings" frontmatter key. Documents
that only carry the older per-setting keys are read from those, and
documents without frontmatter use the fallback settings from the config.

Examples:
  # Show settings as a table
  numheadings show notes.md

  # Show settings as JSON
  numheadings show notes.md -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	format, err := ctx.OutputFormat()
	if err != nil {
		return err
	}
	fallback, err := ctx.Fallback()
	if err != nil {
		return err
	}
	doc, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	res := settings.Resolve(doc.FrontMatter, fallback)
	s := res.Settings

	headings := document.Headings(doc.Body())
	summary := &headingSummary{
		Total:    len(headings),
		Numbered: document.CountInRange(headings, s.FirstLevel, s.MaxLevel),
	}
	if s.Contents != "" {
		summary.ContentsFound = document.HasHeading(headings, s.Contents)
		if !summary.ContentsFound {
			cli.PrintWarning("Contents heading %q not found in %s", s.Contents, doc.Path)
		}
	}

	report := newSettingsReport(s)
	report.File = doc.Path
	report.Source = res.Source.String()
	report.Headings = summary

	return writeReport(cmd.OutOrStdout(), format, report)
}

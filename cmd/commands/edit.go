package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/numheadings/internal/cli"
	"github.com/pluqqy/numheadings/pkg/files"
	"github.com/pluqqy/numheadings/pkg/models"
	"github.com/pluqqy/numheadings/pkg/settings"
	"github.com/pluqqy/numheadings/pkg/tui"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit heading numbering settings interactively",
		Long: `Open an interactive editor for the heading numbering settings of a
markdown document.

Use the arrow keys to move between settings and change values, ctrl+s to
write the settings into the document and esc to leave.

Examples:
  numheadings edit notes.md`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}
	doc, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	res := settings.Resolve(doc.FrontMatter, config.Fallback)
	model := tui.NewSettingsEditorModel(doc.Path, res.Source.String(), res.Settings, saveDocumentSettings(doc), config.UI.ShowPreview)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if model.HasChanges() {
		cli.PrintWarning("Unsaved changes to %s were discarded", doc.Path)
	}
	return nil
}

// saveDocumentSettings splices s into doc and writes it to disk. The
// frontmatter is reparsed afterwards so repeated saves replace the line.
func saveDocumentSettings(doc *files.Document) tui.SaveFunc {
	return func(s models.NumberingSettings) error {
		if err := settings.Save(doc.FrontMatter, doc.Buffer, s); err != nil {
			return err
		}
		if err := files.WriteDocument(doc); err != nil {
			return err
		}
		return doc.Reparse()
	}
}

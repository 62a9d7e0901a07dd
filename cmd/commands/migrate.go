package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/numheadings/internal/cli"
	"github.com/pluqqy/numheadings/pkg/files"
	"github.com/pluqqy/numheadings/pkg/settings"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate <file>...",
		Short: "Rewrite legacy numbering keys in the compact form",
		Long: `Read settings stored in the older one-key-per-setting form and write them
under the compact "number headings" key. Documents that already use the
compact key are left alone. The legacy keys are kept; once the compact key
exists they are no longer read.

Examples:
  numheadings migrate notes.md
  numheadings migrate docs/*.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: runMigrate,
	}

	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()

	fallback, err := ctx.Fallback()
	if err != nil {
		return err
	}

	migrated := 0
	for _, path := range args {
		doc, err := ctx.LoadDocument(path)
		if err != nil {
			return err
		}

		res := settings.Resolve(doc.FrontMatter, fallback)
		switch res.Source {
		case settings.SourceCompact:
			cli.PrintInfo("%s already uses the compact form", path)
			continue
		case settings.SourceFallback:
			cli.PrintInfo("%s has no frontmatter, skipping", path)
			continue
		}

		if err := settings.Save(doc.FrontMatter, doc.Buffer, res.Settings); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", path, err)
		}
		if err := files.WriteDocument(doc); err != nil {
			return err
		}
		migrated++
		cli.PrintSuccess("Migrated %s", path)
	}

	cli.PrintInfo("%d of %d document(s) migrated", migrated, len(args))
	return nil
}

package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pluqqy/numheadings/internal/cli"
	"github.com/pluqqy/numheadings/pkg/models"
)

// settingsFlags binds one flag per numbering setting. Only flags the user
// actually passed are applied, so omitted flags keep the document's values.
type settingsFlags struct {
	auto            bool
	firstLevel      int
	maxLevel        int
	contents        string
	skipTopLevel    bool
	styleLevel1     string
	styleLevelOther string
	separator       string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	defaults := models.DefaultNumberingSettings()
	fs := cmd.Flags()
	fs.BoolVar(&f.auto, "auto", defaults.Auto, "Renumber headings automatically")
	fs.IntVar(&f.firstLevel, "first-level", defaults.FirstLevel, "First heading level to number (1-6)")
	fs.IntVar(&f.maxLevel, "max", defaults.MaxLevel, "Deepest heading level to number (1-6)")
	fs.StringVar(&f.contents, "contents", defaults.Contents, "Heading that holds the table of contents (empty disables)")
	fs.BoolVar(&f.skipTopLevel, "skip-top-level", defaults.SkipTopLevel, "Do not number the first numbered level")
	fs.StringVar(&f.styleLevel1, "style-level-1", defaults.StyleLevel1, "Numbering style of the first level (1, A, I)")
	fs.StringVar(&f.styleLevelOther, "style-level-other", defaults.StyleLevelOther, "Numbering style of deeper levels (1, A, I)")
	fs.StringVar(&f.separator, "separator", defaults.Separator, "Character after the number (: . - — ) or empty)")
}

// apply returns base with every changed flag applied
func (f *settingsFlags) apply(fs *pflag.FlagSet, base models.NumberingSettings) (models.NumberingSettings, error) {
	s := base
	if fs.Changed("auto") {
		s.Auto = f.auto
	}
	if fs.Changed("first-level") {
		if err := cli.ValidateLevel("first-level", f.firstLevel); err != nil {
			return base, err
		}
		s.FirstLevel = f.firstLevel
	}
	if fs.Changed("max") {
		if err := cli.ValidateLevel("max", f.maxLevel); err != nil {
			return base, err
		}
		s.MaxLevel = f.maxLevel
	}
	if fs.Changed("contents") {
		if err := cli.ValidateContents(f.contents); err != nil {
			return base, err
		}
		s.Contents = f.contents
	}
	if fs.Changed("skip-top-level") {
		s.SkipTopLevel = f.skipTopLevel
	}
	if fs.Changed("style-level-1") {
		if err := cli.ValidateLevelStyle("style-level-1", f.styleLevel1); err != nil {
			return base, err
		}
		s.StyleLevel1 = f.styleLevel1
	}
	if fs.Changed("style-level-other") {
		if err := cli.ValidateLevelStyle("style-level-other", f.styleLevelOther); err != nil {
			return base, err
		}
		s.StyleLevelOther = f.styleLevelOther
	}
	if fs.Changed("separator") {
		if err := cli.ValidateSeparator(f.separator); err != nil {
			return base, err
		}
		s.Separator = f.separator
	}
	return s, nil
}

// anyChanged reports whether at least one settings flag was passed
func anyChanged(fs *pflag.FlagSet) bool {
	for _, name := range []string{"auto", "first-level", "max", "contents", "skip-top-level", "style-level-1", "style-level-other", "separator"} {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

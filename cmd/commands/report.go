package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pluqqy/numheadings/internal/cli"
	"github.com/pluqqy/numheadings/pkg/models"
	"github.com/pluqqy/numheadings/pkg/settings"
)

// settingsReport is the structured output of show and decode
type settingsReport struct {
	File     string                   `json:"file,omitempty" yaml:"file,omitempty"`
	Source   string                   `json:"source,omitempty" yaml:"source,omitempty"`
	Encoded  string                   `json:"encoded" yaml:"encoded"`
	Settings models.NumberingSettings `json:"settings" yaml:"settings"`
	Headings *headingSummary          `json:"headings,omitempty" yaml:"headings,omitempty"`
}

type headingSummary struct {
	Total         int  `json:"total" yaml:"total"`
	Numbered      int  `json:"numbered" yaml:"numbered"`
	ContentsFound bool `json:"contentsFound" yaml:"contents_found"`
}

func newSettingsReport(s models.NumberingSettings) settingsReport {
	return settingsReport{
		Encoded:  settings.Encode(s),
		Settings: s,
	}
}

func writeReport(w io.Writer, format string, r settingsReport) error {
	if cli.OutputFormat(format) != cli.FormatText {
		return cli.OutputResults(w, format, r)
	}

	s := r.Settings
	table := cli.NewTableFormatter(w)
	table.Header("SETTING", "VALUE")
	if r.File != "" {
		table.Row("file", r.File)
	}
	if r.Source != "" {
		table.Row("source", r.Source)
	}
	table.Row("auto", cli.FormatBool(s.Auto))
	table.Row("first level", strconv.Itoa(s.FirstLevel))
	table.Row("max level", strconv.Itoa(s.MaxLevel))
	table.Row("contents", cli.FormatOptional(s.Contents))
	table.Row("skip top level", cli.FormatBool(s.SkipTopLevel))
	table.Row("style level 1", s.StyleLevel1)
	table.Row("style level other", s.StyleLevelOther)
	table.Row("separator", cli.FormatOptional(s.Separator))
	if r.Headings != nil {
		table.Row("headings", fmt.Sprintf("%d (%d numbered)", r.Headings.Total, r.Headings.Numbered))
	}
	table.Flush()

	fmt.Fprintf(w, "\n%s: %s\n", settings.Key, r.Encoded)
	return nil
}

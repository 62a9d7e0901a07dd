package models

// Level styles understood by the numbering engine
const (
	StyleArabic = "1"
	StyleLetter = "A"
	StyleRoman  = "I"
)

// Bounds for FirstLevel and MaxLevel
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// LevelStyles lists every valid level style token
var LevelStyles = []string{StyleArabic, StyleLetter, StyleRoman}

// Separators lists every valid trailing separator. The empty separator
// means the number is followed directly by the heading text.
var Separators = []string{"", ":", ".", "-", "—", ")"}

// NumberingSettings controls how headings in a single document are numbered
type NumberingSettings struct {
	Auto            bool   `yaml:"auto" json:"auto" mapstructure:"auto"`
	FirstLevel      int    `yaml:"first_level" json:"firstLevel" mapstructure:"first_level"`
	MaxLevel        int    `yaml:"max_level" json:"maxLevel" mapstructure:"max_level"`
	Contents        string `yaml:"contents" json:"contents" mapstructure:"contents"`
	SkipTopLevel    bool   `yaml:"skip_top_level" json:"skipTopLevel" mapstructure:"skip_top_level"`
	StyleLevel1     string `yaml:"style_level_1" json:"styleLevel1" mapstructure:"style_level_1"`
	StyleLevelOther string `yaml:"style_level_other" json:"styleLevelOther" mapstructure:"style_level_other"`
	Separator       string `yaml:"separator" json:"separator" mapstructure:"separator"`
}

// DefaultNumberingSettings returns the built-in numbering settings
func DefaultNumberingSettings() NumberingSettings {
	return NumberingSettings{
		Auto:            false,
		FirstLevel:      1,
		MaxLevel:        6,
		Contents:        "",
		SkipTopLevel:    false,
		StyleLevel1:     StyleArabic,
		StyleLevelOther: StyleArabic,
		Separator:       "",
	}
}

// Sanitize returns s with every invalid field replaced by the matching field of base
func Sanitize(s, base NumberingSettings) NumberingSettings {
	out := s
	if !IsValidLevel(s.FirstLevel) {
		out.FirstLevel = base.FirstLevel
	}
	if !IsValidLevel(s.MaxLevel) {
		out.MaxLevel = base.MaxLevel
	}
	if s.Contents != "" && !IsValidContents(s.Contents) {
		out.Contents = base.Contents
	}
	if !IsValidLevelStyle(s.StyleLevel1) {
		out.StyleLevel1 = base.StyleLevel1
	}
	if !IsValidLevelStyle(s.StyleLevelOther) {
		out.StyleLevelOther = base.StyleLevelOther
	}
	if !IsValidSeparator(s.Separator) {
		out.Separator = base.Separator
	}
	return out
}

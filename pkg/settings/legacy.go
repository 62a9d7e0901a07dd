package settings

import (
	"github.com/pluqqy/numheadings/pkg/frontmatter"
	"github.com/pluqqy/numheadings/pkg/models"
)

// legacyKey is a per-setting key from before the compact format, with the
// older spelling still accepted
type legacyKey struct {
	preferred  string
	deprecated string
}

var (
	legacySkipTopLevel    = legacyKey{"number-headings-skip-top-level", "header-numbering-skip-top-level"}
	legacyMaxLevel        = legacyKey{"number-headings-max-level", "header-numbering-max-level"}
	legacyStyleLevel1     = legacyKey{"number-headings-style-level-1", "header-numbering-style-level-1"}
	legacyStyleLevelOther = legacyKey{"number-headings-style-level-other", "header-numbering-style-level-other"}
	legacyAuto            = legacyKey{"number-headings-auto", "header-numbering-auto"}
)

// LegacyKeys lists every legacy key spelling, preferred spellings first
func LegacyKeys() []string {
	var keys []string
	for _, k := range []legacyKey{legacySkipTopLevel, legacyMaxLevel, legacyStyleLevel1, legacyStyleLevelOther, legacyAuto} {
		keys = append(keys, k.preferred)
	}
	for _, k := range []legacyKey{legacySkipTopLevel, legacyMaxLevel, legacyStyleLevel1, legacyStyleLevelOther, legacyAuto} {
		keys = append(keys, k.deprecated)
	}
	return keys
}

// value returns the typed value of whichever spelling is present
func (k legacyKey) value(fm *frontmatter.FrontMatter) (any, bool) {
	if v, ok := fm.Value(k.preferred); ok {
		return v, true
	}
	return fm.Value(k.deprecated)
}

// raw returns the scalar text of whichever spelling is present. Styles are
// read this way so that "1" is not decoded as an integer.
func (k legacyKey) raw(fm *frontmatter.FrontMatter) (string, bool) {
	if v, ok := fm.Raw(k.preferred); ok {
		return v, true
	}
	return fm.Raw(k.deprecated)
}

func legacyFlag(fm *frontmatter.FrontMatter, k legacyKey, fallback bool) bool {
	if v, ok := k.value(fm); ok && models.IsValidFlag(v) {
		return v.(bool)
	}
	return fallback
}

func legacyLevel(fm *frontmatter.FrontMatter, k legacyKey, fallback int) int {
	if v, ok := k.value(fm); ok {
		if n, ok := models.LevelValue(v); ok {
			return n
		}
	}
	return fallback
}

func legacyStyle(fm *frontmatter.FrontMatter, k legacyKey, fallback string) string {
	if v, ok := k.raw(fm); ok && models.IsValidLevelStyle(v) {
		return v
	}
	return fallback
}

// decodeLegacy reads the per-setting keys. Fields without a legacy key always
// come from the built-in defaults.
func decodeLegacy(fm *frontmatter.FrontMatter, alternative models.NumberingSettings) models.NumberingSettings {
	defaults := models.DefaultNumberingSettings()
	return models.NumberingSettings{
		Auto:            legacyFlag(fm, legacyAuto, alternative.Auto),
		FirstLevel:      defaults.FirstLevel,
		MaxLevel:        legacyLevel(fm, legacyMaxLevel, alternative.MaxLevel),
		Contents:        defaults.Contents,
		SkipTopLevel:    legacyFlag(fm, legacySkipTopLevel, alternative.SkipTopLevel),
		StyleLevel1:     legacyStyle(fm, legacyStyleLevel1, alternative.StyleLevel1),
		StyleLevelOther: legacyStyle(fm, legacyStyleLevelOther, alternative.StyleLevelOther),
		Separator:       defaults.Separator,
	}
}

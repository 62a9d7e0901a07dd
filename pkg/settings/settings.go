// Package settings converts heading numbering settings to and from the
// compact string stored under the "number headings" frontmatter key.
//
// A compact value looks like:
//
//	number headings: auto, first-level 2, max 4, contents Table of Contents, _.1.A-
//
// Documents written before the compact key existed store one setting per key;
// those are still read when the compact key is missing, and every save writes
// the compact form.
package settings

import (
	"github.com/pluqqy/numheadings/pkg/frontmatter"
	"github.com/pluqqy/numheadings/pkg/models"
)

// Key is the frontmatter key holding the compact settings string
const Key = "number headings"

// Source identifies where resolved settings came from
type Source int

const (
	// SourceFallback means the document has no frontmatter
	SourceFallback Source = iota
	// SourceCompact means the settings were read from Key
	SourceCompact
	// SourceLegacy means the settings were read from the per-setting keys
	SourceLegacy
)

func (s Source) String() string {
	switch s {
	case SourceCompact:
		return "compact"
	case SourceLegacy:
		return "legacy"
	default:
		return "fallback"
	}
}

// Resolution is the outcome of reading settings from a document
type Resolution struct {
	Settings models.NumberingSettings
	Source   Source
}

// Resolve reads the effective settings for a document. A nil fm returns
// alternative unchanged. When the compact key is present it is authoritative
// and only merges with the built-in defaults; otherwise the legacy keys are
// read with alternative as the per-field fallback.
func Resolve(fm *frontmatter.FrontMatter, alternative models.NumberingSettings) Resolution {
	if fm == nil {
		return Resolution{Settings: alternative, Source: SourceFallback}
	}
	if s, ok := decodeCompact(fm); ok {
		return Resolution{Settings: s, Source: SourceCompact}
	}
	return Resolution{Settings: decodeLegacy(fm, alternative), Source: SourceLegacy}
}

// Decode returns the effective settings for a document
func Decode(fm *frontmatter.FrontMatter, alternative models.NumberingSettings) models.NumberingSettings {
	return Resolve(fm, alternative).Settings
}

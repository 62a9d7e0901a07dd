package models

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned when a user supplies a value directly
var (
	ErrInvalidLevel     = errors.New("heading level must be between 1 and 6")
	ErrInvalidStyle     = errors.New("level style must be one of 1, A, I")
	ErrInvalidSeparator = errors.New("separator must be one of : . - — ) or empty")
	ErrInvalidContents  = errors.New("contents must not contain commas, line breaks, \": \" or \" #\"")
)

// IsValidLevel reports whether v is a heading depth the numbering engine accepts
func IsValidLevel(v any) bool {
	_, ok := LevelValue(v)
	return ok
}

// LevelValue converts v to a heading depth, reporting false when v is not a
// valid level
func LevelValue(v any) (int, bool) {
	n, ok := toInt(v)
	if !ok || n < MinHeadingLevel || n > MaxHeadingLevel {
		return 0, false
	}
	return n, true
}

// IsValidFlag reports whether v is a boolean
func IsValidFlag(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsValidLevelStyle reports whether v is one of LevelStyles
func IsValidLevelStyle(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, style := range LevelStyles {
		if s == style {
			return true
		}
	}
	return false
}

// IsValidSeparator reports whether v is one of Separators
func IsValidSeparator(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, sep := range Separators {
		if s == sep {
			return true
		}
	}
	return false
}

// IsValidContents reports whether v can name a table of contents heading.
// The value has to survive both the comma separated settings line and the
// YAML plain scalar that line is stored in.
func IsValidContents(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" || strings.TrimSpace(s) != s {
		return false
	}
	if strings.ContainsAny(s, ",\n\r") {
		return false
	}
	return !strings.Contains(s, ": ") && !strings.Contains(s, " #")
}

// ValidateNumberingSettings checks every field and returns the first problem found
func ValidateNumberingSettings(s NumberingSettings) error {
	if !IsValidLevel(s.FirstLevel) {
		return fmt.Errorf("first level %d: %w", s.FirstLevel, ErrInvalidLevel)
	}
	if !IsValidLevel(s.MaxLevel) {
		return fmt.Errorf("max level %d: %w", s.MaxLevel, ErrInvalidLevel)
	}
	if s.Contents != "" && !IsValidContents(s.Contents) {
		return fmt.Errorf("contents %q: %w", s.Contents, ErrInvalidContents)
	}
	if !IsValidLevelStyle(s.StyleLevel1) {
		return fmt.Errorf("style level 1 %q: %w", s.StyleLevel1, ErrInvalidStyle)
	}
	if !IsValidLevelStyle(s.StyleLevelOther) {
		return fmt.Errorf("style level other %q: %w", s.StyleLevelOther, ErrInvalidStyle)
	}
	if !IsValidSeparator(s.Separator) {
		return fmt.Errorf("separator %q: %w", s.Separator, ErrInvalidSeparator)
	}
	return nil
}

// toInt accepts the integer shapes YAML decoding can produce
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/numheadings/pkg/models"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateLevel validates a heading level flag
func ValidateLevel(flag string, level int) error {
	if !models.IsValidLevel(level) {
		return fmt.Errorf("--%s %d: %w", flag, level, models.ErrInvalidLevel)
	}
	return nil
}

// ValidateLevelStyle validates a level style flag
func ValidateLevelStyle(flag, style string) error {
	if !models.IsValidLevelStyle(style) {
		return fmt.Errorf("--%s %q: %w", flag, style, models.ErrInvalidStyle)
	}
	return nil
}

// ValidateSeparator validates the separator flag
func ValidateSeparator(sep string) error {
	if !models.IsValidSeparator(sep) {
		return fmt.Errorf("--separator %q: %w", sep, models.ErrInvalidSeparator)
	}
	return nil
}

// ValidateContents validates the contents flag. Empty disables the table of contents.
func ValidateContents(contents string) error {
	if contents != "" && !models.IsValidContents(contents) {
		return fmt.Errorf("--contents %q: %w", contents, models.ErrInvalidContents)
	}
	return nil
}

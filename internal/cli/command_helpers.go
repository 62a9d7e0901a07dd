package cli

import (
	"fmt"

	"github.com/pluqqy/numheadings/pkg/files"
	"github.com/pluqqy/numheadings/pkg/models"
)

// CommandContext carries the configuration shared by every command
type CommandContext struct {
	ConfigPath string
	Config     *models.Config
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ConfigPath: configPath,
	}
}

// LoadConfig reads the configuration once. An explicit --config that cannot
// be read is an error; otherwise a broken config falls back to defaults with
// a warning.
func (c *CommandContext) LoadConfig() (*models.Config, error) {
	if c.Config != nil {
		return c.Config, nil
	}

	config, err := files.ReadConfig(c.ConfigPath)
	if err != nil {
		if c.ConfigPath != "" {
			return nil, err
		}
		PrintWarning("Using default configuration: %v", err)
		config = models.DefaultConfig()
	}

	c.Config = config
	return config, nil
}

// Fallback returns the settings used when a document has no frontmatter
func (c *CommandContext) Fallback() (models.NumberingSettings, error) {
	config, err := c.LoadConfig()
	if err != nil {
		return models.NumberingSettings{}, err
	}
	return config.Fallback, nil
}

// OutputFormat returns the --output flag or the configured default
func (c *CommandContext) OutputFormat() (string, error) {
	if outputFormat != "" {
		return outputFormat, ValidateOutputFormat(outputFormat)
	}
	config, err := c.LoadConfig()
	if err != nil {
		return "", err
	}
	return config.Output.Format, ValidateOutputFormat(config.Output.Format)
}

// LoadDocument validates path and reads the markdown document
func (c *CommandContext) LoadDocument(path string) (*files.Document, error) {
	if err := ValidateFilePath(path); err != nil {
		return nil, err
	}
	if !files.IsMarkdownFile(path) {
		PrintWarning("%s does not look like a markdown file", path)
	}
	doc, err := files.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

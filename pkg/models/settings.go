package models

// Config represents the application configuration
type Config struct {
	Fallback NumberingSettings `yaml:"fallback" mapstructure:"fallback"`
	Output   OutputSettings    `yaml:"output" mapstructure:"output"`
	UI       UISettings        `yaml:"ui" mapstructure:"ui"`
}

// OutputSettings controls command output
type OutputSettings struct {
	Format string `yaml:"format" mapstructure:"format"` // "text", "json" or "yaml"
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview bool `yaml:"show_preview" mapstructure:"show_preview"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Fallback: DefaultNumberingSettings(),
		Output: OutputSettings{
			Format: "text",
		},
		UI: UISettings{
			ShowPreview: true,
		},
	}
}

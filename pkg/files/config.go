package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pluqqy/numheadings/pkg/models"
)

const (
	// AppName names the config directory and the environment prefix
	AppName = "numheadings"
	// ConfigName is the config file name without extension
	ConfigName = "config"
)

// DefaultConfigDir returns $XDG_CONFIG_HOME/numheadings or its platform equivalent
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName)
}

// ReadConfig loads the configuration. An explicit path must exist; without one
// the default config directory is searched and a missing file is not an
// error. Environment variables such as NUMHEADINGS_FALLBACK_MAX_LEVEL
// override file values.
func ReadConfig(path string) (*models.Config, error) {
	v := viper.New()
	setConfigDefaults(v, models.DefaultConfig())

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		if dir := DefaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.Fallback = models.Sanitize(config.Fallback, models.DefaultNumberingSettings())
	return &config, nil
}

func setConfigDefaults(v *viper.Viper, c *models.Config) {
	f := c.Fallback
	v.SetDefault("fallback.auto", f.Auto)
	v.SetDefault("fallback.first_level", f.FirstLevel)
	v.SetDefault("fallback.max_level", f.MaxLevel)
	v.SetDefault("fallback.contents", f.Contents)
	v.SetDefault("fallback.skip_top_level", f.SkipTopLevel)
	v.SetDefault("fallback.style_level_1", f.StyleLevel1)
	v.SetDefault("fallback.style_level_other", f.StyleLevelOther)
	v.SetDefault("fallback.separator", f.Separator)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("ui.show_preview", c.UI.ShowPreview)
}

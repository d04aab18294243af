// Package config loads wishlist-chart settings from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. WISHLISTCHART_THEME_DARK.
const EnvPrefix = "WISHLISTCHART"

type Config struct {
	Theme  ThemeConfig  `mapstructure:"theme"  yaml:"theme"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Chart  ChartConfig  `mapstructure:"chart"  yaml:"chart"`
}

type ThemeConfig struct {
	Dark bool   `mapstructure:"dark" yaml:"dark"`
	Page string `mapstructure:"page" yaml:"page"` // HTML page whose <body> class decides the theme
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "html", "json", "png", "svg"
	Engine string `mapstructure:"engine" yaml:"engine"` // "plot" or "gochart"; images only
	Path   string `mapstructure:"path"   yaml:"path"`
}

type ChartConfig struct {
	Width     int    `mapstructure:"width"      yaml:"width"`  // pixels
	Height    int    `mapstructure:"height"     yaml:"height"` // pixels
	ScriptURL string `mapstructure:"script_url" yaml:"script_url"`
	Title     string `mapstructure:"title"      yaml:"title"`
}

// Load reads wishlist-chart.yaml from the working directory or ~/.wishlist-chart.
// A missing file is not an error.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("wishlist-chart")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".wishlist-chart"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme.dark", false)
	v.SetDefault("theme.page", "")

	v.SetDefault("output.format", "html")
	v.SetDefault("output.engine", "plot")
	v.SetDefault("output.path", "")

	v.SetDefault("chart.width", 640)
	v.SetDefault("chart.height", 400)
	v.SetDefault("chart.script_url", "https://cdn.jsdelivr.net/npm/chart.js")
	v.SetDefault("chart.title", "Wishlists by product")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

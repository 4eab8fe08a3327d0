package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the CLI settings. Defaults can be overridden by an
// optional YAML file and by GRANGERSCOPE_* environment variables.
type Config struct {
	LogLevel          string  `mapstructure:"log_level"`
	SignificanceLevel float64 `mapstructure:"significance_level"`
	MaxDiffIterations int     `mapstructure:"max_diff_iterations"`
	Workers           int     `mapstructure:"workers"`
	OutputDir         string  `mapstructure:"output_dir"`
	XColumn           string  `mapstructure:"x_column"`
	YColumn           string  `mapstructure:"y_column"`
	Plots             bool    `mapstructure:"plots"`
}

// LoadConfig reads the configuration, layering file and environment over
// the defaults. An empty path skips the file entirely.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("significance_level", 0.05)
	v.SetDefault("max_diff_iterations", 5)
	v.SetDefault("workers", 0)
	v.SetDefault("output_dir", ".")
	v.SetDefault("x_column", "x")
	v.SetDefault("y_column", "y")
	v.SetDefault("plots", true)

	v.SetEnvPrefix("grangerscope")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

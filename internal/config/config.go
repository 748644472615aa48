// Package config loads git-time-extractor settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the tool reads
const EnvPrefix = "GIT_TIME_EXTRACTOR"

// Config holds all configuration settings
type Config struct {
	// Repository is the path of the repository to read
	Repository string `mapstructure:"repository"`

	// Output is the output target; only "-" (stdout) is supported
	Output string `mapstructure:"output"`

	// Project is echoed into every report row
	Project string `mapstructure:"project"`

	// MaxCommits bounds the history window
	MaxCommits int `mapstructure:"max_commits"`

	// Source selects the commit source backend: "git" or "go-git"
	Source string `mapstructure:"source"`

	// Format selects the report format: "csv", "json" or "markdown"
	Format string `mapstructure:"format"`

	Estimate EstimateConfig `mapstructure:"estimate"`
	Report   ReportConfig   `mapstructure:"report"`
}

type EstimateConfig struct {
	Default     time.Duration `mapstructure:"default"`
	SessionGap  time.Duration `mapstructure:"session_gap"`
	LegacyFloor bool          `mapstructure:"legacy_floor"`
}

type ReportConfig struct {
	WeekNumbering string `mapstructure:"week_numbering"` // "monday" or "iso"
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Repository: ".",
		Output:     "-",
		MaxCommits: 1000,
		Source:     "git",
		Format:     "csv",
		Estimate: EstimateConfig{
			Default:    30 * time.Minute,
			SessionGap: 3 * time.Hour,
		},
		Report: ReportConfig{
			WeekNumbering: "monday",
		},
	}
}

// Load loads configuration from path, or from .git-time-extractor.yaml in
// the working or home directory when path is empty. A missing file is not
// an error. Environment variables override file values.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("repository", cfg.Repository)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("project", cfg.Project)
	v.SetDefault("max_commits", cfg.MaxCommits)
	v.SetDefault("source", cfg.Source)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("estimate.default", cfg.Estimate.Default)
	v.SetDefault("estimate.session_gap", cfg.Estimate.SessionGap)
	v.SetDefault("estimate.legacy_floor", cfg.Estimate.LegacyFloor)
	v.SetDefault("report.week_numbering", cfg.Report.WeekNumbering)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".git-time-extractor")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(homeDir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with
func (c *Config) Validate() error {
	if c.MaxCommits < 0 {
		return fmt.Errorf("max_commits must not be negative, got %d", c.MaxCommits)
	}
	if c.Estimate.Default <= 0 {
		return fmt.Errorf("estimate.default must be positive, got %s", c.Estimate.Default)
	}
	if c.Estimate.SessionGap <= 0 {
		return fmt.Errorf("estimate.session_gap must be positive, got %s", c.Estimate.SessionGap)
	}
	return nil
}

// loadEnvFiles loads .env files from the working directory, most specific first.
// godotenv never overrides variables that are already set.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		homeEnv := filepath.Join(homeDir, ".git-time-extractor.env")
		if _, err := os.Stat(homeEnv); err == nil {
			_ = godotenv.Load(homeEnv)
		}
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Report   ReportConfig
	Database DatabaseConfig
	UI       UIConfig
}

// ReportConfig holds report-endpoint settings.
type ReportConfig struct {
	URL     string
	Timeout time.Duration
	Sample  bool
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone string
}

// Load reads configuration from file and env. Env var overrides use prefix SHIPVIEW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("report.url", "")
	v.SetDefault("report.timeout", "30s")
	v.SetDefault("report.sample", false)
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "shipview", "shipview.db"))
	v.SetDefault("ui.timezone", "Local")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SHIPVIEW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "shipview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHIPVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("SHIPVIEW_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "shipview", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("report.url", cfg.Report.URL)
	v.Set("report.timeout", cfg.Report.Timeout.String())
	v.Set("report.sample", cfg.Report.Sample)
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.timezone", cfg.UI.Timezone)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

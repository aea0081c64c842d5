package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Advanced holds power-user options read from an optional config file. These
// never surface in the settings dialog; most installations run on defaults.
type Advanced struct {
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	UserAgent        string        `mapstructure:"user_agent"`
	ExtraRegistryDir string        `mapstructure:"extra_registry_dir"`
}

// DefaultAdvanced returns the built-in defaults
func DefaultAdvanced() *Advanced {
	return &Advanced{
		HTTPTimeout: 30 * time.Second,
		UserAgent:   "OpacApp/1.0",
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "opacapp")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "opacapp")
	}
}

// LoadAdvanced loads advanced options from file and environment
func LoadAdvanced() (*Advanced, error) {
	cfg := DefaultAdvanced()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultConfigPath())
	v.AddConfigPath(".")

	v.SetDefault("http_timeout", cfg.HTTPTimeout)
	v.SetDefault("user_agent", cfg.UserAgent)

	// Environment variable overrides
	v.SetEnvPrefix("OPACAPP")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

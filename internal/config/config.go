// Package config holds the runtime configuration and the credential store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config is the runtime configuration, built once at process start and
// passed to the components that need it.
type Config struct {
	Provider       string        `mapstructure:"provider"`
	Model          string        `mapstructure:"model"`
	APIBase        string        `mapstructure:"api_base"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

const (
	DefaultProvider = "gemini"

	// EnvPrefix namespaces environment overrides, e.g. COMMIT_DRAFTER_MODEL.
	EnvPrefix = "COMMIT_DRAFTER"

	// EnvFileName is the credential file kept next to the executable.
	EnvFileName = ".env"

	// GeminiKeyName is the environment variable holding the provider API key.
	GeminiKeyName = "GEMINI_API_KEY"

	DefaultRequestTimeout = 60 * time.Second
)

// InitConfig wires defaults and environment bindings and auto-loads the
// credential file. Values already present in the real environment win over
// the file.
func InitConfig() error {
	viper.SetDefault("provider", DefaultProvider)
	viper.SetDefault("model", "")
	viper.SetDefault("api_base", "")
	viper.SetDefault("request_timeout", DefaultRequestTimeout)

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	path, err := EnvFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		if err := gotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// GetConfig unmarshals the current configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	return cfg, nil
}

// EnvFilePath returns the credential file path, fixed relative to the
// installed executable.
func EnvFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), EnvFileName), nil
}

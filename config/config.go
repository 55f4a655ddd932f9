package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Liveflow LiveflowConfig `yaml:"liveflow"`
	API      APIConfig      `yaml:"api"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type LiveflowConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Key       string        `yaml:"key"`
	Secret    string        `yaml:"secret"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

func LoadConfig(path string) (*Config, error) {
	// Read configuration file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		API: APIConfig{
			BaseURL: "https://api.livecoin.net",
			Timeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Credentials come from the environment when present so they never have
	// to live in the config file.
	if v := os.Getenv("LIVECOIN_API_KEY"); v != "" {
		config.API.Key = strings.TrimSpace(v)
	}
	if v := os.Getenv("LIVECOIN_API_SECRET"); v != "" {
		config.API.Secret = strings.TrimSpace(v)
	}
	if v := os.Getenv("LIVECOIN_BASE_URL"); v != "" {
		config.API.BaseURL = strings.TrimSpace(v)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Liveflow.Name == "" {
		return fmt.Errorf("liveflow.name is required")
	}

	if cfg.Liveflow.Version == "" {
		return fmt.Errorf("liveflow.version is required")
	}

	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !isValidBaseURL(cfg.API.BaseURL) {
		return fmt.Errorf("api.base_url '%s' is invalid", cfg.API.BaseURL)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be greater than 0")
	}

	// Key and secret are both-or-neither: a signed request needs the pair.
	if (cfg.API.Key == "") != (cfg.API.Secret == "") {
		return fmt.Errorf("api.key and api.secret must be configured together")
	}

	return nil
}

func isValidBaseURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

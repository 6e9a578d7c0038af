package main

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultListenAddr     = ":8080"
	DefaultWebhookWorkers = 5
	DefaultWebhookTimeout = 5 * time.Second

	LogFormatText = "text"
	LogFormatJson = "json"
)

type Config struct {
	ListenAddr     string        `yaml:"listen_addr"`
	DatabasePath   string        `yaml:"database_path"`
	Substitution   string        `yaml:"substitution"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
	WebhookWorkers int           `yaml:"webhook_workers"`
	WebhookTimeout time.Duration `yaml:"webhook_timeout"`
}

var ConfigError = errors.New("invalid config")

func DefaultConfig() Config {
	return Config{
		ListenAddr:     DefaultListenAddr,
		Substitution:   SubstitutionToken,
		LogLevel:       "info",
		LogFormat:      LogFormatText,
		WebhookWorkers: DefaultWebhookWorkers,
		WebhookTimeout: DefaultWebhookTimeout,
	}
}

// LoadConfig applies, in order: defaults, yaml file (if path is not empty), environment variables
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("read config: %w", err)
		}

		if err = yaml.Unmarshal(content, &config); err != nil {
			return config, fmt.Errorf("%w: %s: %s", ConfigError, path, err)
		}
	}

	if err := config.applyEnv(getenv); err != nil {
		return config, err
	}

	return config, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	stringVars := map[string]*string{
		"LISTEN_ADDR":          &c.ListenAddr,
		"DATABASE_FILEPATH":    &c.DatabasePath,
		"FORMULA_SUBSTITUTION": &c.Substitution,
		"LOG_LEVEL":            &c.LogLevel,
		"LOG_FORMAT":           &c.LogFormat,
	}

	for name, target := range stringVars {
		if value := getenv(name); value != "" {
			*target = value
		}
	}

	if value := getenv("WEBHOOK_WORKERS"); value != "" {
		workers, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: WEBHOOK_WORKERS: %s", ConfigError, err)
		}
		c.WebhookWorkers = workers
	}

	if value := getenv("WEBHOOK_TIMEOUT"); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: WEBHOOK_TIMEOUT: %s", ConfigError, err)
		}
		c.WebhookTimeout = timeout
	}

	return nil
}

func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database path is required (--db or DATABASE_FILEPATH)", ConfigError)
	}

	if c.Substitution != SubstitutionToken && c.Substitution != SubstitutionLegacy {
		return fmt.Errorf("%w: substitution %q (expected %s or %s)", ConfigError, c.Substitution, SubstitutionToken, SubstitutionLegacy)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJson {
		return fmt.Errorf("%w: log format %q (expected %s or %s)", ConfigError, c.LogFormat, LogFormatText, LogFormatJson)
	}

	if c.WebhookWorkers < 1 {
		return fmt.Errorf("%w: webhook workers should be positive", ConfigError)
	}

	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return level, fmt.Errorf("%w: log level %q", ConfigError, c.LogLevel)
	}
	return level, nil
}

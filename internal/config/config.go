// Package config loads the storefront settings: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/app"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/assist"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/session"
)

type Config struct {
	HTTPPort           string        `yaml:"http_port"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	MaxRequestBodySize int64         `yaml:"max_request_body_size"`

	CheckoutDelay time.Duration `yaml:"checkout_delay"`
	SessionTTL    time.Duration `yaml:"session_ttl"`

	Assist AssistConfig `yaml:"assist"`
}

type AssistConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

func Default() *Config {
	return &Config{
		HTTPPort:           "8080",
		RequestTimeout:     30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 1 << 20, // 1MB
		CheckoutDelay:      app.DefaultCheckoutDelay,
		SessionTTL:         session.DefaultTTL,
		Assist: AssistConfig{
			Model:   assist.DefaultModel,
			Timeout: assist.DefaultTimeout,
		},
	}
}

// Load returns the defaults overlaid with path (when non-empty) and the
// environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.HTTPPort = getEnv("HTTP_PORT", c.HTTPPort)
	c.Assist.APIKey = getEnv("GEMINI_API_KEY", getEnv("API_KEY", c.Assist.APIKey))
	c.Assist.Model = getEnv("GEMINI_MODEL", c.Assist.Model)

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"REQUEST_TIMEOUT", &c.RequestTimeout},
		{"SHUTDOWN_TIMEOUT", &c.ShutdownTimeout},
		{"CHECKOUT_DELAY", &c.CheckoutDelay},
		{"SESSION_TTL", &c.SessionTTL},
		{"ASSIST_TIMEOUT", &c.Assist.Timeout},
	}
	for _, d := range durations {
		v, err := getEnvDuration(d.key, *d.dst)
		if err != nil {
			return err
		}
		*d.dst = v
	}
	return nil
}

func (c *Config) Validate() error {
	var problems []string
	if c.HTTPPort == "" {
		problems = append(problems, "http_port is empty")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "request_timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "shutdown_timeout must be positive")
	}
	if c.CheckoutDelay < 0 {
		problems = append(problems, "checkout_delay must not be negative")
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, "session_ttl must be positive")
	}
	if c.Assist.Timeout <= 0 {
		problems = append(problems, "assist.timeout must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

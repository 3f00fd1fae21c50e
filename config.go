// config.go
// ---------
// Client configuration: upstream base URL, per-attempt timeouts, and the
// retry policy. The defaults match the production Sensor Tower API.
// LoadConfig applies a YAML fragment over the defaults; FromEnv honors the
// environment variables the original deployments used. The core itself
// never reads files or the environment, both helpers exist for mains.
package towerbridge

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the production API host.
	DefaultBaseURL = "https://api.sensortower.com"

	// EnvBaseURL and EnvToken are the variables FromEnv reads.
	EnvBaseURL = "API_BASE_URL"
	EnvToken   = "SENSOR_TOWER_API_TOKEN"
)

// RetryPolicy bounds the executor's retry loop. MaxAttempts counts every
// attempt including the first, so 5 attempts means 4 retries.
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// Config carries everything NewClient needs besides the credential source.
type Config struct {
	BaseURL        string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	Retry          RetryPolicy

	// Transport overrides the default HTTP transport when set. Tests use
	// scripted transports through this field.
	Transport Transport
}

// DefaultConfig returns the production defaults: 5 attempts backing off
// from 500ms up to an 8s cap, a 5s connect timeout, and a 45s attempt
// timeout.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    45 * time.Second,
		Retry: RetryPolicy{
			MaxAttempts: 5,
			BaseBackoff: 500 * time.Millisecond,
			MaxBackoff:  8 * time.Second,
		},
	}
}

// withDefaults fills zero fields so a partially-populated Config behaves
// like DefaultConfig for everything left unset.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = def.ConnectTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = def.ReadTimeout
	}
	if c.Retry.MaxAttempts <= 0 {
		c.Retry.MaxAttempts = def.Retry.MaxAttempts
	}
	if c.Retry.BaseBackoff <= 0 {
		c.Retry.BaseBackoff = def.Retry.BaseBackoff
	}
	if c.Retry.MaxBackoff <= 0 {
		c.Retry.MaxBackoff = def.Retry.MaxBackoff
	}
	return c
}

// fileConfig is the YAML shape of a config fragment. Durations are
// strings in time.ParseDuration form ("500ms", "45s").
type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	ConnectTimeout string `yaml:"connect_timeout"`
	ReadTimeout    string `yaml:"read_timeout"`
	Retry          struct {
		MaxAttempts int    `yaml:"max_attempts"`
		BaseBackoff string `yaml:"base_backoff"`
		MaxBackoff  string `yaml:"max_backoff"`
	} `yaml:"retry"`
}

// LoadConfig reads a YAML fragment and applies it over the defaults.
// Unknown fields are ignored; malformed durations are an error rather
// than a silent fallback.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.BaseURL = firstNonEmpty(fc.BaseURL, cfg.BaseURL)
	if fc.Retry.MaxAttempts > 0 {
		cfg.Retry.MaxAttempts = fc.Retry.MaxAttempts
	}
	for _, f := range []struct {
		raw  string
		name string
		dst  *time.Duration
	}{
		{fc.ConnectTimeout, "connect_timeout", &cfg.ConnectTimeout},
		{fc.ReadTimeout, "read_timeout", &cfg.ReadTimeout},
		{fc.Retry.BaseBackoff, "retry.base_backoff", &cfg.Retry.BaseBackoff},
		{fc.Retry.MaxBackoff, "retry.max_backoff", &cfg.Retry.MaxBackoff},
	} {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = d
	}
	return cfg, nil
}

// FromEnv returns the defaults with the base URL override applied, plus
// whatever API token the environment carries (empty when unset).
func FromEnv() (Config, string) {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	return cfg, os.Getenv(EnvToken)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

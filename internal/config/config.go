// Package config loads and validates bridge configuration from a YAML file
// and environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Transport names accepted in ServerConfig.Transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config is the root bridge configuration. It is built once at startup and
// never mutated afterwards.
type Config struct {
	Gephi         GephiConfig         `yaml:"gephi"`
	Server        ServerConfig        `yaml:"server"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// GephiConfig describes how to reach the Gephi MCP plugin's HTTP API.
type GephiConfig struct {
	// BaseURL is the fixed address of the Gephi plugin, without a trailing slash.
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each backend call. A single attempt, no retries.
	Timeout time.Duration `yaml:"timeout"`
}

// ServerConfig describes how the bridge is exposed to the MCP caller.
type ServerConfig struct {
	// Transport selects the caller-facing transport: "stdio" or "http".
	Transport string `yaml:"transport"`
	// ListenAddr is the bind address for the HTTP transport.
	ListenAddr string `yaml:"listen_addr"`
}

// ObservabilityConfig describes logging and tracing settings.
type ObservabilityConfig struct {
	LogLevel string        `yaml:"log_level"`
	Tracing  TracingConfig `yaml:"tracing"`
}

// TracingConfig describes distributed tracing settings.
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"`
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"sampling_rate"`
}

// Defaults returns a Config with sensible default values. The Gephi plugin
// listens on 127.0.0.1:8080 by default, and long-running operations such as
// layout runs justify a generous per-call timeout.
func Defaults() *Config {
	return &Config{
		Gephi: GephiConfig{
			BaseURL: "http://127.0.0.1:8080",
			Timeout: 60 * time.Second,
		},
		Server: ServerConfig{
			Transport:  TransportStdio,
			ListenAddr: ":8090",
		},
		Observability: ObservabilityConfig{
			LogLevel: "info",
			Tracing: TracingConfig{
				Exporter:     "otlp",
				SamplingRate: 0.1,
			},
		},
	}
}

// Load reads a YAML config file, applies environment variable overrides,
// and validates the result. A missing file is not an error: the bridge is
// commonly run with defaults only, so Load falls back to Defaults plus
// environment overrides when path does not exist.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults + environment only.
	default:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	cfg.Gephi.BaseURL = strings.TrimRight(cfg.Gephi.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	var errs []string

	u, err := url.Parse(c.Gephi.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, "gephi.base_url must be a valid http(s) URL")
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, "gephi.base_url scheme must be http or https")
	}
	if c.Gephi.Timeout <= 0 {
		errs = append(errs, "gephi.timeout must be positive")
	}
	if c.Server.Transport != TransportStdio && c.Server.Transport != TransportHTTP {
		errs = append(errs, fmt.Sprintf("server.transport must be %q or %q", TransportStdio, TransportHTTP))
	}
	if c.Server.Transport == TransportHTTP && c.Server.ListenAddr == "" {
		errs = append(errs, "server.listen_addr is required for the http transport")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// applyEnvOverrides reads GEPHI_MCP_* environment variables and overrides
// config values. Only the most commonly overridden fields are supported.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GEPHI_MCP_BASE_URL"); v != "" {
		cfg.Gephi.BaseURL = v
	}
	if v := os.Getenv("GEPHI_MCP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Gephi.Timeout = d
		}
	}
	if v := os.Getenv("GEPHI_MCP_TRANSPORT"); v != "" {
		cfg.Server.Transport = v
	}
	if v := os.Getenv("GEPHI_MCP_LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("GEPHI_MCP_LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the czteryde server configuration.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr"`

	// AllowedOrigins are the CORS origins permitted to call the API.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// ViewerDistance is the projection distance used when a request does
	// not supply one. Must be non-zero.
	ViewerDistance float64 `yaml:"viewer_distance"`

	// RequestTimeout bounds handling of a single request ("10s", "500ms").
	RequestTimeout string `yaml:"request_timeout"`

	// MaxVertices and MaxEdges cap shapes accepted over the wire.
	MaxVertices int `yaml:"max_vertices"`
	MaxEdges    int `yaml:"max_edges"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Addr:           ":3010",
		AllowedOrigins: []string{"http://localhost:3009"},
		ViewerDistance: 5.0,
		RequestTimeout: "10s",
		MaxVertices:    4096,
		MaxEdges:       16384,
	}
}

// Load reads a YAML config file, keeps defaults for unset fields, applies
// environment overrides and validates the result. An empty path yields the
// defaults plus overrides.
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
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CZTERYDE_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("CZTERYDE_ORIGINS"); v != "" {
		c.AllowedOrigins = strings.Split(v, ",")
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.ViewerDistance == 0 {
		return fmt.Errorf("viewer_distance must be non-zero")
	}
	if c.MaxVertices <= 0 || c.MaxEdges <= 0 {
		return fmt.Errorf("max_vertices and max_edges must be positive")
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return fmt.Errorf("request_timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", d)
	}
	return nil
}

// Timeout returns the parsed request timeout. Validate guarantees it parses.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Package config loads the CLI's HCL configuration file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/makerstudio-forge/cloudsync/pkg/cloud"
)

// Config is the cloudsync configuration file. Every attribute is
// optional; command-line flags override whatever the file sets.
type Config struct {
	// BaseURL is the project-storage service address.
	BaseURL string `hcl:"base_url,optional"`

	// UserID is the default user for cloud operations when no -user
	// flag is given.
	UserID string `hcl:"user_id,optional"`

	// WorkspaceDir is where sync installs projects.
	WorkspaceDir string `hcl:"workspace_dir,optional"`

	// Timeout for service requests, as a Go duration string.
	Timeout string `hcl:"timeout,optional"`

	// LogLevel sets the hclog level (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional"`

	// Ntfy, when present, enables push notifications for sync results.
	Ntfy *Ntfy `hcl:"ntfy,block"`
}

// Ntfy is the push notification block.
type Ntfy struct {
	ServerURL string `hcl:"server_url,optional"`
	Topic     string `hcl:"topic"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		BaseURL:  cloud.DefaultBaseURL,
		Timeout:  "10s",
		LogLevel: "info",
	}
}

// Load reads a configuration file, filling unset attributes with
// defaults. An empty path returns the defaults outright.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = cloud.DefaultBaseURL
	}
	if cfg.Timeout == "" {
		cfg.Timeout = "10s"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the attribute values a typo most often breaks.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https scheme, got: %s", parsed.Scheme)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.Ntfy != nil && c.Ntfy.Topic == "" {
		return fmt.Errorf("ntfy block requires a topic")
	}
	return nil
}

// RequestTimeout returns the parsed timeout. Call Validate first; an
// unparseable value falls back to the default here.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Package base carries the scaffolding every cloudsync command shares:
// the UI, the logger, flag handling and the config-file/flag
// resolution for commands that talk to the service.
package base

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/makerstudio-forge/cloudsync/internal/config"
	"github.com/makerstudio-forge/cloudsync/internal/version"
	"github.com/makerstudio-forge/cloudsync/pkg/cloud"
	"github.com/makerstudio-forge/cloudsync/pkg/identity"
)

// Command is embedded by every command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger
}

// NewCommand returns the shared command scaffolding.
func NewCommand(ui cli.Ui, log hclog.Logger) *Command {
	return &Command{UI: ui, Log: log}
}

// ClientOptions are the flags shared by commands that reach the
// project-storage service.
type ClientOptions struct {
	ConfigPath string
	BaseURL    string
	User       string
}

// Register adds the shared flags to a flag set.
func (o *ClientOptions) Register(f *FlagSet) {
	f.StringVar(&o.ConfigPath, "config", "",
		"Path to a cloudsync HCL configuration file.")
	f.StringVar(&o.BaseURL, "base-url", "",
		"Project-storage service address. Overrides the config file.")
	f.StringVar(&o.User, "user", "",
		"User ID for cloud operations. Overrides the config file's user_id.")
}

// LoadConfig resolves the effective configuration: the file (or
// defaults) with flag overrides applied. It also retunes the logger to
// the configured level.
func (c *Command) LoadConfig(o *ClientOptions) (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.User != "" {
		cfg.UserID = o.User
	}
	if cfg.LogLevel != "" {
		c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	}
	return cfg, nil
}

// NewClient builds the cloud client for a resolved configuration.
func (c *Command) NewClient(cfg *config.Config) (*cloud.Client, error) {
	return cloud.NewClient(&cloud.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.RequestTimeout(),
		UserAgent: "cloudsync/" + version.Version,
		Logger:    c.Log,
	})
}

// Identity resolves who cloud operations act for: the -user flag or
// the config file's user_id.
func (c *Command) Identity(cfg *config.Config) (identity.Provider, error) {
	provider := identity.Static(cfg.UserID)
	if _, err := provider.CurrentUserID(); err != nil {
		return nil, fmt.Errorf("no user ID: pass -user or set user_id in the config file")
	}
	return provider, nil
}

// Package sync implements the command that imports a user's cloud
// projects into the local workspace.
package sync

import (
	"context"
	"fmt"

	"github.com/makerstudio-forge/cloudsync/internal/cmd/base"
	"github.com/makerstudio-forge/cloudsync/internal/config"
	"github.com/makerstudio-forge/cloudsync/pkg/importer"
	"github.com/makerstudio-forge/cloudsync/pkg/notify"
	"github.com/makerstudio-forge/cloudsync/pkg/syncer"
	"github.com/makerstudio-forge/cloudsync/pkg/workspace/adapters/local"
)

type Command struct {
	*base.Command

	clientOpts    base.ClientOptions
	flagWorkspace string
}

func (c *Command) Synopsis() string {
	return "Import the user's cloud projects into the workspace"
}

func (c *Command) Help() string {
	return `Usage: cloudsync sync -workspace=/path/to/workspace [options]

  Downloads each of the user's cloud projects and installs it into the
  local workspace. Projects whose name already exists locally are
  skipped; local work always wins. A project that fails to download or
  import is counted and the rest still sync.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("sync")
	c.clientOpts.Register(f)
	f.StringVar(&c.flagWorkspace, "workspace", "",
		"Workspace directory projects are installed into. Overrides the config file's workspace_dir.")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := c.LoadConfig(&c.clientOpts)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	workspaceDir := c.flagWorkspace
	if workspaceDir == "" {
		workspaceDir = cfg.WorkspaceDir
	}
	if workspaceDir == "" {
		c.UI.Error("no workspace: pass -workspace or set workspace_dir in the config file")
		return 1
	}

	provider, err := c.Identity(cfg)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, err := c.NewClient(cfg)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	store, err := local.NewStore(local.Config{Root: workspaceDir, Logger: c.Log})
	if err != nil {
		c.UI.Error(fmt.Sprintf("error opening workspace: %v", err))
		return 1
	}

	notifier, err := c.buildNotifier(cfg)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	imp, err := importer.New(importer.Config{
		Store:    store,
		Notifier: notifier,
		Logger:   c.Log,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	s, err := syncer.New(syncer.Config{
		Client:   client,
		Importer: imp,
		Identity: provider,
		Notifier: notifier,
		Logger:   c.Log,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	// Per-project failures live inside the report; only a run that
	// never got going is a command failure.
	report, err := s.Run(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("sync failed: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("%d cloud projects: %d imported, %d skipped, %d failed",
		report.Total, report.Imported, report.Skipped, report.Failed))
	return 0
}

// buildNotifier assembles the sinks sync results go to: always the
// terminal, plus ntfy when the config file asks for push.
func (c *Command) buildNotifier(cfg *config.Config) (notify.Notifier, error) {
	sinks := notify.Multi{notify.NewUI(c.UI)}
	if cfg.Ntfy != nil {
		n, err := notify.NewNtfy(notify.NtfyConfig{
			ServerURL: cfg.Ntfy.ServerURL,
			Topic:     cfg.Ntfy.Topic,
			Logger:    c.Log,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, n)
	}
	return sinks, nil
}

package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/makerstudio-forge/cloudsync/internal/cmd/base"
	"github.com/makerstudio-forge/cloudsync/internal/cmd/commands/health"
	"github.com/makerstudio-forge/cloudsync/internal/cmd/commands/list"
	"github.com/makerstudio-forge/cloudsync/internal/cmd/commands/push"
	"github.com/makerstudio-forge/cloudsync/internal/cmd/commands/remove"
	"github.com/makerstudio-forge/cloudsync/internal/cmd/commands/show"
	"github.com/makerstudio-forge/cloudsync/internal/cmd/commands/sync"
	"github.com/makerstudio-forge/cloudsync/internal/cmd/commands/update"
	"github.com/makerstudio-forge/cloudsync/internal/cmd/commands/version"
)

// Commands is the CLI's command registry, filled by initCommands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(ui, log)

	Commands = map[string]cli.CommandFactory{
		"push": func() (cli.Command, error) {
			return &push.Command{Command: b}, nil
		},
		"list": func() (cli.Command, error) {
			return &list.Command{Command: b}, nil
		},
		"show": func() (cli.Command, error) {
			return &show.Command{Command: b}, nil
		},
		"update": func() (cli.Command, error) {
			return &update.Command{Command: b}, nil
		},
		"delete": func() (cli.Command, error) {
			return &remove.Command{Command: b}, nil
		},
		"sync": func() (cli.Command, error) {
			return &sync.Command{Command: b}, nil
		},
		"health": func() (cli.Command, error) {
			return &health.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}

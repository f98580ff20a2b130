// Package version implements the version command.
package version

import (
	"github.com/makerstudio-forge/cloudsync/internal/cmd/base"
	buildversion "github.com/makerstudio-forge/cloudsync/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the cloudsync version"
}

func (c *Command) Help() string {
	return `Usage: cloudsync version

  Prints the cloudsync version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("cloudsync " + buildversion.Version)
	return 0
}

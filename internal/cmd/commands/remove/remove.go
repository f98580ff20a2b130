// Package remove implements the command that deletes a cloud project.
package remove

import (
	"context"
	"fmt"

	"github.com/makerstudio-forge/cloudsync/internal/cmd/base"
)

type Command struct {
	*base.Command

	clientOpts base.ClientOptions
	flagID     int64
}

func (c *Command) Synopsis() string {
	return "Delete a cloud project"
}

func (c *Command) Help() string {
	return `Usage: cloudsync delete -id=7 [options]

  Deletes a cloud project. The local workspace is untouched.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("delete")
	c.clientOpts.Register(f)
	f.Int64Var(&c.flagID, "id", 0,
		"ID of the cloud project. Required.")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagID == 0 {
		c.UI.Error("-id is required")
		return 1
	}

	cfg, err := c.LoadConfig(&c.clientOpts)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	provider, err := c.Identity(cfg)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	userID, _ := provider.CurrentUserID()

	client, err := c.NewClient(cfg)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	result, err := client.DeleteProject(context.Background(), c.flagID, userID)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error deleting project: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Deleted project %d", result.ID))
	return 0
}

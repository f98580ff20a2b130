// Package update implements the command that renames or replaces a
// cloud project.
package update

import (
	"context"
	"fmt"
	"os"

	"github.com/makerstudio-forge/cloudsync/internal/cmd/base"
	"github.com/makerstudio-forge/cloudsync/pkg/bundle"
	"github.com/makerstudio-forge/cloudsync/pkg/cloud"
)

type Command struct {
	*base.Command

	clientOpts base.ClientOptions
	flagID     int64
	flagName   string
	flagFile   string
}

func (c *Command) Synopsis() string {
	return "Rename a cloud project or replace its bundle"
}

func (c *Command) Help() string {
	return `Usage: cloudsync update -id=7 [-name=NewName] [-file=rover.bin] [options]

  Updates a cloud project. Fields without a flag keep their stored
  values; at least one of -name or -file is required.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("update")
	c.clientOpts.Register(f)
	f.Int64Var(&c.flagID, "id", 0,
		"ID of the cloud project. Required.")
	f.StringVar(&c.flagName, "name", "",
		"New name for the project.")
	f.StringVar(&c.flagFile, "file", "",
		"Binary bundle to replace the stored one.")
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

	// Only flags that were actually given go on the wire; the service
	// keeps whatever is absent.
	var req cloud.UpdateProjectRequest
	if f.Changed("name") {
		req.ProjectName = cloud.String(c.flagName)
	}
	if f.Changed("file") {
		raw, err := os.ReadFile(c.flagFile)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error reading bundle: %v", err))
			return 1
		}
		req.ProjectData = cloud.String(bundle.Encode(raw))
	}
	if req.ProjectName == nil && req.ProjectData == nil {
		c.UI.Error("nothing to update: pass -name, -file or both")
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

	result, err := client.UpdateProject(context.Background(), c.flagID, userID, req)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error updating project: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Updated project %d at %s", result.ID, result.UpdatedAt))
	return 0
}

// Package push implements the command that uploads a bundle file as a
// new cloud project.
package push

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
	flagFile   string
	flagName   string
}

func (c *Command) Synopsis() string {
	return "Upload a project bundle to cloud storage"
}

func (c *Command) Help() string {
	return `Usage: cloudsync push -file=rover.bin -name=Rover [options]

  Reads a binary project bundle, encodes it the way the service stores
  bundles, and creates a new cloud project for the user.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("push")
	c.clientOpts.Register(f)
	f.StringVar(&c.flagFile, "file", "",
		"Path to the binary project bundle to upload. Required.")
	f.StringVar(&c.flagName, "name", "",
		"Name for the cloud project. Required.")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagFile == "" || c.flagName == "" {
		c.UI.Error("both -file and -name are required")
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

	raw, err := os.ReadFile(c.flagFile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading bundle: %v", err))
		return 1
	}

	client, err := c.NewClient(cfg)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	result, err := client.CreateProject(context.Background(), cloud.CreateProjectRequest{
		UserID:      userID,
		ProjectName: c.flagName,
		ProjectData: bundle.Encode(raw),
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating project: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Created project %q with ID %d", c.flagName, result.ID))
	return 0
}

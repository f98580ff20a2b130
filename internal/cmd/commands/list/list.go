// Package list implements the command that enumerates a user's cloud
// projects.
package list

import (
	"bytes"
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/makerstudio-forge/cloudsync/internal/cmd/base"
)

type Command struct {
	*base.Command

	clientOpts base.ClientOptions
}

func (c *Command) Synopsis() string {
	return "List the user's cloud projects"
}

func (c *Command) Help() string {
	return `Usage: cloudsync list [options]

  Lists the cloud projects stored for the user, without downloading
  their bundle data.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("list")
	c.clientOpts.Register(f)
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

	items, err := client.ListProjects(context.Background(), userID)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing projects: %v", err))
		return 1
	}
	if len(items) == 0 {
		c.UI.Info("No cloud projects")
		return 0
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 2, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUPDATED")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\n", item.ID, item.ProjectName, item.UpdatedAt)
	}
	w.Flush()
	c.UI.Output(buf.String())
	return 0
}

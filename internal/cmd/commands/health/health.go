// Package health implements the command that probes the service's
// health endpoint.
package health

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/makerstudio-forge/cloudsync/internal/cmd/base"
)

type Command struct {
	*base.Command

	clientOpts      base.ClientOptions
	flagWait        bool
	flagWaitTimeout time.Duration
}

func (c *Command) Synopsis() string {
	return "Check whether the project-storage service is up"
}

func (c *Command) Help() string {
	return `Usage: cloudsync health [options]

  Probes the service's health endpoint once. With -wait, keeps probing
  with exponential backoff until the service reports healthy or the
  wait timeout expires, which is useful while a local service starts.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("health")
	c.clientOpts.Register(f)
	f.BoolVar(&c.flagWait, "wait", false,
		"Keep probing until the service is healthy.")
	f.DurationVar(&c.flagWaitTimeout, "wait-timeout", 2*time.Minute,
		"Give up waiting after this long.")
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
	client, err := c.NewClient(cfg)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	probe := func() error {
		status, err := client.Health(context.Background())
		if err != nil {
			return err
		}
		if !status.Healthy() {
			return fmt.Errorf("service reports status %q", status.Status)
		}
		return nil
	}

	if !c.flagWait {
		if err := probe(); err != nil {
			c.UI.Error(fmt.Sprintf("service at %s is not healthy: %v", cfg.BaseURL, err))
			return 1
		}
		c.UI.Info(fmt.Sprintf("Service at %s is healthy", cfg.BaseURL))
		return 0
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.flagWaitTimeout
	err = backoff.RetryNotify(probe, policy, func(err error, next time.Duration) {
		c.Log.Debug("service not ready", "error", err, "retry_in", next)
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("service at %s did not become healthy within %s: %v",
			cfg.BaseURL, c.flagWaitTimeout, err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Service at %s is healthy", cfg.BaseURL))
	return 0
}

package cmd

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommands(t *testing.T) {
	initCommands(hclog.NewNullLogger(), cli.NewMockUi())

	for _, name := range []string{
		"push", "list", "show", "update", "delete", "sync", "health", "version",
	} {
		factory, ok := Commands[name]
		require.True(t, ok, "missing command %q", name)

		c, err := factory()
		require.NoError(t, err)
		assert.NotEmpty(t, c.Synopsis(), "command %q has no synopsis", name)
		assert.NotEmpty(t, c.Help(), "command %q has no help", name)
	}
}

func TestVersionCommand(t *testing.T) {
	ui := cli.NewMockUi()
	initCommands(hclog.NewNullLogger(), ui)

	factory := Commands["version"]
	c, err := factory()
	require.NoError(t, err)

	assert.Zero(t, c.Run(nil))
	assert.Contains(t, ui.OutputWriter.String(), "cloudsync")
}

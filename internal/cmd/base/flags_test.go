package base

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSetChanged(t *testing.T) {
	f := NewFlagSet("test")
	var name, file string
	f.StringVar(&name, "name", "", "Name.")
	f.StringVar(&file, "file", "", "File.")

	require.NoError(t, f.Parse([]string{"-name", ""}))

	assert.True(t, f.Changed("name"), "explicit empty value still counts as set")
	assert.False(t, f.Changed("file"))
}

func TestFlagSetHelp(t *testing.T) {
	f := NewFlagSet("test")
	var opts ClientOptions
	opts.Register(f)

	help := f.Help()
	assert.Contains(t, help, "-base-url")
	assert.Contains(t, help, "-config")
	assert.Contains(t, help, "-user")
}

func TestClientOptionsOverrideConfig(t *testing.T) {
	cmd := NewCommand(nil, hclog.NewNullLogger())
	cfg, err := cmd.LoadConfig(&ClientOptions{
		BaseURL: "https://projects.example.com",
		User:    "u-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://projects.example.com", cfg.BaseURL)
	assert.Equal(t, "u-42", cfg.UserID)

	provider, err := cmd.Identity(cfg)
	require.NoError(t, err)
	userID, err := provider.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, "u-42", userID)
}

func TestIdentityRequiresAUser(t *testing.T) {
	cmd := NewCommand(nil, hclog.NewNullLogger())
	cfg, err := cmd.LoadConfig(&ClientOptions{})
	require.NoError(t, err)

	_, err = cmd.Identity(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-user")
}

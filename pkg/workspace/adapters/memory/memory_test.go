package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerstudio-forge/cloudsync/pkg/workspace"
)

func TestInstallAndList(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	installed, err := s.Install(ctx, workspace.Header{Name: "Rover", Editor: "blocks"},
		map[string]string{"project.json": "{}"})
	require.NoError(t, err)
	assert.NotEmpty(t, installed.ID)

	headers, err := s.ListHeaders(ctx)
	require.NoError(t, err)
	require.Len(t, headers, 1)
	assert.Equal(t, "Rover", headers[0].Name)

	files := s.Files(installed.ID)
	assert.Equal(t, map[string]string{"project.json": "{}"}, files)
}

func TestFilesReturnsCopy(t *testing.T) {
	s := NewStore()

	installed, err := s.Install(context.Background(), workspace.Header{Name: "A", Editor: "blocks"},
		map[string]string{"project.json": "{}"})
	require.NoError(t, err)

	files := s.Files(installed.ID)
	files["project.json"] = "mutated"

	assert.Equal(t, "{}", s.Files(installed.ID)["project.json"])
	assert.Nil(t, s.Files("missing"))
}

func TestInstallValidates(t *testing.T) {
	s := NewStore()

	_, err := s.Install(context.Background(), workspace.Header{}, nil)
	require.Error(t, err)

	headers, err := s.ListHeaders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, headers)
}

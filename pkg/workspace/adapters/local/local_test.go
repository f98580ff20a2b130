package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerstudio-forge/cloudsync/pkg/workspace"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := NewStore(Config{Root: "/workspace", Fs: fs})
	require.NoError(t, err)
	return s, fs
}

func TestNewStoreRequiresRoot(t *testing.T) {
	_, err := NewStore(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root directory")
}

func TestInstallAndList(t *testing.T) {
	s, fs := newTestStore(t)
	ctx := context.Background()

	installed, err := s.Install(ctx, workspace.Header{
		Name:   "Rover",
		Editor: "blocks",
	}, map[string]string{
		"project.json": `{"name":"Rover"}`,
		"main.blocks":  "<xml/>",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, installed.ID)
	assert.NotZero(t, installed.RecentUse)
	assert.NotZero(t, installed.ModificationTime)

	// Files and sidecar on disk.
	content, err := afero.ReadFile(fs, filepath.Join("/workspace", installed.ID, "main.blocks"))
	require.NoError(t, err)
	assert.Equal(t, "<xml/>", string(content))

	exists, err := afero.Exists(fs, filepath.Join("/workspace", installed.ID, headerFileName))
	require.NoError(t, err)
	assert.True(t, exists)

	headers, err := s.ListHeaders(ctx)
	require.NoError(t, err)
	require.Len(t, headers, 1)
	assert.Equal(t, "Rover", headers[0].Name)
	assert.Equal(t, installed.ID, headers[0].ID)
}

func TestInstallKeepsProvidedTimestamps(t *testing.T) {
	s, _ := newTestStore(t)

	installed, err := s.Install(context.Background(), workspace.Header{
		Name:             "Backdated",
		Editor:           "blocks",
		RecentUse:        1600000000,
		ModificationTime: 1600000000,
	}, map[string]string{"project.json": "{}"})
	require.NoError(t, err)
	assert.Equal(t, int64(1600000000), installed.RecentUse)
	assert.Equal(t, int64(1600000000), installed.ModificationTime)
}

func TestInstallRejectsInvalidHeader(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Install(context.Background(), workspace.Header{Name: "NoEditor"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid header")
}

func TestInstallRejectsUnsafeFileNames(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"../escape.ts", "/etc/passwd", "", headerFileName} {
		_, err := s.Install(ctx, workspace.Header{Name: "Evil", Editor: "blocks"},
			map[string]string{name: "boom"})
		assert.Error(t, err, "file name %q should be rejected", name)
	}
}

func TestListSkipsCorruptSidecars(t *testing.T) {
	s, fs := newTestStore(t)
	ctx := context.Background()

	_, err := s.Install(ctx, workspace.Header{Name: "Good", Editor: "blocks"},
		map[string]string{"project.json": "{}"})
	require.NoError(t, err)

	// A project directory whose sidecar is not YAML.
	require.NoError(t, fs.MkdirAll("/workspace/broken", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/workspace/broken/"+headerFileName, []byte("\t{not yaml"), 0o644))

	// And one with no sidecar at all.
	require.NoError(t, fs.MkdirAll("/workspace/empty", 0o755))

	headers, err := s.ListHeaders(ctx)
	require.NoError(t, err)
	require.Len(t, headers, 1)
	assert.Equal(t, "Good", headers[0].Name)
}

func TestInstallNestedFilePaths(t *testing.T) {
	s, fs := newTestStore(t)

	installed, err := s.Install(context.Background(), workspace.Header{Name: "Nested", Editor: "typescript"},
		map[string]string{
			"project.json":    "{}",
			"assets/icon.svg": "<svg/>",
		})
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, filepath.Join("/workspace", installed.ID, "assets", "icon.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))
}

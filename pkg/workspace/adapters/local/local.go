// Package local implements workspace.Store on a directory tree.
//
// Each installed project gets one directory under the root, named by
// the header ID, holding the project files verbatim plus a header.yaml
// sidecar with the header fields. That layout keeps projects greppable
// and lets the editor (or a human) inspect them without tooling.
package local

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/makerstudio-forge/cloudsync/pkg/workspace"
)

// headerFileName is the per-project sidecar carrying the header.
const headerFileName = "header.yaml"

// Config configures the local store.
type Config struct {
	// Root is the directory projects are installed under. Created if
	// it does not exist.
	Root string

	// Fs overrides the backing filesystem. Defaults to the OS
	// filesystem; tests pass an in-memory one.
	Fs afero.Fs

	Logger hclog.Logger
}

// Store is a directory-backed workspace store.
type Store struct {
	root   string
	fs     afero.Fs
	logger hclog.Logger
	now    func() time.Time
}

var _ workspace.Store = (*Store)(nil)

// NewStore opens (creating if needed) a store rooted at cfg.Root.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("local store: root directory is required")
	}
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if err := fs.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("creating workspace root: %w", err)
	}
	return &Store{
		root:   cfg.Root,
		fs:     fs,
		logger: logger.Named("workspace.local"),
		now:    time.Now,
	}, nil
}

// ListHeaders loads the sidecar of every project directory. Entries
// with a missing or corrupt sidecar are skipped with a warning rather
// than failing the whole listing.
func (s *Store) ListHeaders(ctx context.Context) ([]workspace.Header, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("reading workspace root: %w", err)
	}

	var headers []workspace.Header
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		raw, err := afero.ReadFile(s.fs, filepath.Join(s.root, entry.Name(), headerFileName))
		if err != nil {
			s.logger.Warn("skipping project without readable header", "dir", entry.Name(), "error", err)
			continue
		}
		var h workspace.Header
		if err := yaml.Unmarshal(raw, &h); err != nil {
			s.logger.Warn("skipping project with corrupt header", "dir", entry.Name(), "error", err)
			continue
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// Install writes a new project directory. The header ID and timestamps
// are assigned when zero; the returned header is what went to disk.
func (s *Store) Install(ctx context.Context, h workspace.Header, files map[string]string) (*workspace.Header, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	now := s.now().Unix()
	if h.RecentUse == 0 {
		h.RecentUse = now
	}
	if h.ModificationTime == 0 {
		h.ModificationTime = now
	}

	dir := filepath.Join(s.root, h.ID)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	for name, content := range files {
		if err := validFileName(name); err != nil {
			return nil, err
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := s.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", name, err)
		}
		if err := afero.WriteFile(s.fs, target, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
	}

	raw, err := yaml.Marshal(&h)
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	if err := afero.WriteFile(s.fs, filepath.Join(dir, headerFileName), raw, 0o644); err != nil {
		return nil, fmt.Errorf("writing header sidecar: %w", err)
	}

	s.logger.Debug("installed project", "id", h.ID, "name", h.Name, "files", len(files))
	return &h, nil
}

// validFileName rejects file map entries that would escape the project
// directory.
func validFileName(name string) error {
	if name == "" {
		return fmt.Errorf("empty file name in project")
	}
	if path.IsAbs(name) || strings.Contains(name, "..") {
		return fmt.Errorf("unsafe file name in project: %q", name)
	}
	if name == headerFileName {
		return fmt.Errorf("file name %q is reserved", headerFileName)
	}
	return nil
}

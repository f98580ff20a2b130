// Package memory implements workspace.Store in process memory, for
// tests and for hosts that handle persistence themselves.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/makerstudio-forge/cloudsync/pkg/workspace"
)

// Store keeps installed projects in memory. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	headers []workspace.Header
	files   map[string]map[string]string
	now     func() time.Time
}

var _ workspace.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		files: make(map[string]map[string]string),
		now:   time.Now,
	}
}

func (s *Store) ListHeaders(ctx context.Context) ([]workspace.Header, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]workspace.Header, len(s.headers))
	copy(out, s.headers)
	return out, nil
}

func (s *Store) Install(ctx context.Context, h workspace.Header, files map[string]string) (*workspace.Header, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

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

	stored := make(map[string]string, len(files))
	for name, content := range files {
		stored[name] = content
	}

	s.headers = append(s.headers, h)
	s.files[h.ID] = stored
	return &h, nil
}

// Files returns a copy of an installed project's file map, nil when the
// ID is unknown.
func (s *Store) Files(id string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.files[id]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(stored))
	for name, content := range stored {
		out[name] = content
	}
	return out
}

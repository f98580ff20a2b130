// Package importer installs cloud project bundles into the local
// workspace.
//
// The importer is the boundary where conflict policy lives: an
// incoming project whose name matches any installed project is skipped
// rather than merged or renamed, so local work always wins over cloud
// copies.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"

	"github.com/makerstudio-forge/cloudsync/pkg/bundle"
	"github.com/makerstudio-forge/cloudsync/pkg/notify"
	"github.com/makerstudio-forge/cloudsync/pkg/workspace"
)

// Config configures an Importer.
type Config struct {
	// Store receives the installed projects. Required.
	Store workspace.Store

	// Notifier receives the user-facing outcome of each import.
	// Defaults to a discarding sink.
	Notifier notify.Notifier

	// Refresh, when set, is invoked after a successful install so the
	// host editor can reload its project list.
	Refresh func()

	Logger hclog.Logger

	// Clock overrides the time source for header timestamps. Tests
	// pin it; everything else leaves it nil for time.Now.
	Clock func() time.Time
}

// Importer turns stored bundle text into installed workspace projects.
type Importer struct {
	store    workspace.Store
	notifier notify.Notifier
	refresh  func()
	logger   hclog.Logger
	clock    func() time.Time
}

// New creates an Importer. The store is required.
func New(cfg Config) (*Importer, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("importer: workspace store is required")
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.Null{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Importer{
		store:    cfg.Store,
		notifier: notifier,
		refresh:  cfg.Refresh,
		logger:   logger.Named("importer"),
		clock:    clock,
	}, nil
}

// Request is one cloud project to import.
type Request struct {
	// Name is the cloud-side project name. When empty, the name
	// assembled from the bundle is used instead.
	Name string

	// Data is the stored Base64 bundle text.
	Data string

	// CreatedAt is the server's creation timestamp, when known. It
	// seeds the installed header's timestamps so imported projects
	// sort where the user expects.
	CreatedAt string
}

// Import decodes a bundle and installs it as a new workspace project.
//
// It returns (true, nil) when the project was installed, (false, nil)
// when an installed project already uses the name and the import was
// skipped. Malformed bundles and store failures are reported through
// the notifier and returned to the caller.
func (imp *Importer) Import(ctx context.Context, req Request) (bool, error) {
	doc, err := bundle.DecodeAndDecompress(req.Data)
	if err != nil {
		return false, imp.fail(req.Name, err)
	}
	payload, err := bundle.ParsePayload(doc)
	if err != nil {
		return false, imp.fail(req.Name, err)
	}
	prj, err := bundle.BuildProject(payload)
	if err != nil {
		return false, imp.fail(req.Name, err)
	}

	name := req.Name
	if name == "" {
		name = prj.Name
	}

	headers, err := imp.store.ListHeaders(ctx)
	if err != nil {
		return false, imp.fail(name, fmt.Errorf("listing workspace projects: %w", err))
	}
	for _, h := range headers {
		if h.Name == name {
			imp.logger.Debug("skipping project, name already in workspace",
				"name", name, "existing_id", h.ID)
			imp.notifier.Info(fmt.Sprintf("Project %q already exists, skipped", name))
			return false, nil
		}
	}

	h := workspace.Header{
		Name:          name,
		Editor:        prj.Editor,
		Target:        prj.Target,
		TargetVersion: prj.TargetVersion,
		// Imported projects start unpublished regardless of the
		// bundle's publish state on the cloud side.
		PubID:      "",
		PubCurrent: false,
		Meta:       prj.Meta,
	}
	if ts := imp.headerTime(req.CreatedAt); ts != 0 {
		h.RecentUse = ts
		h.ModificationTime = ts
	}

	installed, err := imp.store.Install(ctx, h, prj.Files)
	if err != nil {
		instErr := &InstallError{Name: name, Err: err}
		imp.notifier.Error(fmt.Sprintf("Failed to import %q: %v", name, err))
		return false, instErr
	}

	imp.logger.Info("imported project",
		"name", name, "id", installed.ID, "editor", installed.Editor,
		"kind", payload.Kind.String(), "files", len(prj.Files))
	imp.notifier.Info(fmt.Sprintf("Imported %q", name))
	if imp.refresh != nil {
		imp.refresh()
	}
	return true, nil
}

// fail reports an import failure through the notifier and hands the
// error back unchanged.
func (imp *Importer) fail(name string, err error) error {
	if name == "" {
		name = "(unnamed)"
	}
	imp.logger.Error("import failed", "name", name, "error", err)
	imp.notifier.Error(fmt.Sprintf("Failed to import %q: %v", name, err))
	return err
}

// headerTime parses a server timestamp into unix seconds, falling back
// to the clock when the timestamp is absent or unreadable.
func (imp *Importer) headerTime(createdAt string) int64 {
	if createdAt != "" {
		if ts, err := dateparse.ParseAny(createdAt); err == nil {
			return ts.Unix()
		}
		imp.logger.Debug("unparseable server timestamp, using local time", "created_at", createdAt)
	}
	return imp.clock().Unix()
}

// Package syncer runs one pass of cloud-to-workspace synchronization.
//
// A pass lists the user's cloud projects and imports them one at a
// time, in list order. A project that fails to fetch or import is
// counted and logged, then the pass moves on; one bad bundle must not
// block the rest of the account. Only the aggregate counts reach the
// user.
package syncer

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/makerstudio-forge/cloudsync/pkg/cloud"
	"github.com/makerstudio-forge/cloudsync/pkg/identity"
	"github.com/makerstudio-forge/cloudsync/pkg/importer"
	"github.com/makerstudio-forge/cloudsync/pkg/notify"
)

// Client is the slice of the cloud client a sync pass uses.
type Client interface {
	ListProjects(ctx context.Context, userID string) ([]cloud.ProjectListItem, error)
	GetProject(ctx context.Context, id int64, userID string) (*cloud.ProjectRecord, error)
}

var _ Client = (*cloud.Client)(nil)

// Importer installs one fetched project.
type Importer interface {
	Import(ctx context.Context, req importer.Request) (bool, error)
}

var _ Importer = (*importer.Importer)(nil)

// Config configures a Syncer.
type Config struct {
	// Client fetches cloud projects. Required.
	Client Client

	// Importer installs them. Required.
	Importer Importer

	// Identity resolves the user whose projects are synced. Required.
	Identity identity.Provider

	// Notifier receives the aggregate result. Defaults to a
	// discarding sink.
	Notifier notify.Notifier

	Logger hclog.Logger
}

// Syncer pulls a user's cloud projects into the workspace.
type Syncer struct {
	client   Client
	importer Importer
	identity identity.Provider
	notifier notify.Notifier
	logger   hclog.Logger
}

// New creates a Syncer.
func New(cfg Config) (*Syncer, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("syncer: cloud client is required")
	}
	if cfg.Importer == nil {
		return nil, fmt.Errorf("syncer: importer is required")
	}
	if cfg.Identity == nil {
		return nil, fmt.Errorf("syncer: identity provider is required")
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.Null{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Syncer{
		client:   cfg.Client,
		importer: cfg.Importer,
		identity: cfg.Identity,
		notifier: notifier,
		logger:   logger.Named("syncer"),
	}, nil
}

// Report is the outcome of one sync pass.
type Report struct {
	// Total is how many cloud projects the listing returned.
	Total int

	// Imported counts projects installed into the workspace.
	Imported int

	// Skipped counts projects whose name already existed locally.
	Skipped int

	// Failed counts projects that could not be fetched or imported.
	Failed int

	// Errors holds the per-project failures for diagnostics. They are
	// logged and counted but never surfaced individually to the user.
	Errors *multierror.Error
}

// Run executes one sequential sync pass.
//
// Failures before iteration starts (identity, listing) abort the run
// with an error. Per-project failures do not: they are recorded in the
// report and the pass continues, so Run returns a nil error even when
// some projects failed.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	userID, err := s.identity.CurrentUserID()
	if err != nil {
		return nil, fmt.Errorf("resolving user: %w", err)
	}

	items, err := s.client.ListProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing cloud projects: %w", err)
	}

	report := &Report{Total: len(items)}
	if len(items) == 0 {
		s.logger.Info("no cloud projects to sync", "user", userID)
		s.notifier.Info("No cloud projects to sync")
		return report, nil
	}

	s.logger.Info("starting sync", "user", userID, "projects", len(items))

	for _, item := range items {
		record, err := s.client.GetProject(ctx, item.ID, userID)
		if err != nil {
			s.fail(report, item, fmt.Errorf("fetching project %d: %w", item.ID, err))
			continue
		}

		imported, err := s.importer.Import(ctx, importer.Request{
			Name:      record.ProjectName,
			Data:      record.ProjectData,
			CreatedAt: record.CreatedAt,
		})
		if err != nil {
			s.fail(report, item, err)
			continue
		}
		if imported {
			report.Imported++
		} else {
			report.Skipped++
		}
	}

	s.logger.Info("sync finished",
		"user", userID, "imported", report.Imported,
		"skipped", report.Skipped, "failed", report.Failed)
	s.notifier.Info(report.Summary())
	return report, nil
}

// fail records one per-project failure and keeps the pass going.
func (s *Syncer) fail(report *Report, item cloud.ProjectListItem, err error) {
	s.logger.Error("project sync failed",
		"id", item.ID, "name", item.ProjectName, "error", err)
	report.Errors = multierror.Append(report.Errors, err)
	report.Failed++
}

// Summary renders the aggregate counts for the notification sink.
func (r *Report) Summary() string {
	msg := fmt.Sprintf("Sync complete: %d imported, %d skipped", r.Imported, r.Skipped)
	if r.Failed > 0 {
		msg += fmt.Sprintf(", %d failed", r.Failed)
	}
	return msg
}

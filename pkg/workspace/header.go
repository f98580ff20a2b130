// Package workspace defines the surface the host editor exposes to the
// sync layer: project headers and the store they are installed into.
package workspace

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Header describes an installed project the way the editor's project
// list sees it. JSON uses the editor's camelCase dialect; the YAML tags
// match the sidecar files the local store writes.
type Header struct {
	ID               string         `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	Editor           string         `json:"editor" yaml:"editor"`
	Target           string         `json:"target,omitempty" yaml:"target,omitempty"`
	TargetVersion    string         `json:"targetVersion,omitempty" yaml:"target_version,omitempty"`
	PubID            string         `json:"pubId" yaml:"pub_id"`
	PubCurrent       bool           `json:"pubCurrent" yaml:"pub_current"`
	RecentUse        int64          `json:"recentUse" yaml:"recent_use"`
	ModificationTime int64          `json:"modificationTime" yaml:"modification_time"`
	Meta             map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Validate checks the fields a store needs before it will install the
// header.
func (h *Header) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.Name, validation.Required),
		validation.Field(&h.Editor, validation.Required),
	)
}

// Store is the slice of the editor's project storage the sync layer
// talks to.
//
// ListHeaders returns the headers of every installed project. Install
// creates a new project from a header and its file map, assigning the
// ID and timestamps the header leaves zero, and returns the header as
// stored. Install never merges into an existing project; conflict
// policy belongs to the caller.
type Store interface {
	ListHeaders(ctx context.Context) ([]Header, error)
	Install(ctx context.Context, h Header, files map[string]string) (*Header, error)
}

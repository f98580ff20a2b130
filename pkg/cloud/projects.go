package cloud

import (
	"context"
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateProjectRequest is the payload for CreateProject.
type CreateProjectRequest struct {
	UserID      string `json:"userId"`
	ProjectName string `json:"projectName"`
	ProjectData string `json:"projectData"` // Base64 bundle text
}

// Validate checks the request before it goes on the wire.
func (r *CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.ProjectName, validation.Required),
		validation.Field(&r.ProjectData, validation.Required),
	)
}

// UpdateProjectRequest carries the fields an update changes. Nil
// fields are left out of the request body entirely and the service
// keeps their stored values; an empty string would overwrite them.
type UpdateProjectRequest struct {
	ProjectName *string `json:"projectName,omitempty"`
	ProjectData *string `json:"projectData,omitempty"`
}

// Validate requires at least one field and rejects empty values.
func (r *UpdateProjectRequest) Validate() error {
	if r.ProjectName == nil && r.ProjectData == nil {
		return fmt.Errorf("no fields to update")
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.ProjectName, validation.NilOrNotEmpty),
		validation.Field(&r.ProjectData, validation.NilOrNotEmpty),
	)
}

// CreateProject stores a new project and returns its assigned ID.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*SaveResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid create request: %w", err)
	}

	var result SaveResult
	if err := c.doRequest(ctx, "POST", "/api/projects", req, &result); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	c.logger.Info("created project", "id", result.ID, "name", req.ProjectName)
	return &result, nil
}

// ListProjects returns the user's stored projects, without bundle
// data.
func (c *Client) ListProjects(ctx context.Context, userID string) ([]ProjectListItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}

	path := fmt.Sprintf("/api/projects/user/%s", url.PathEscape(userID))

	var items []ProjectListItem
	if err := c.doRequest(ctx, "GET", path, nil, &items); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return items, nil
}

// GetProject fetches one full project record, including its bundle
// text.
func (c *Client) GetProject(ctx context.Context, id int64, userID string) (*ProjectRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}

	path := pathWithQuery(fmt.Sprintf("/api/projects/%d", id),
		map[string]string{"userId": userID})

	var record ProjectRecord
	if err := c.doRequest(ctx, "GET", path, nil, &record); err != nil {
		return nil, fmt.Errorf("getting project %d: %w", id, err)
	}

	return &record, nil
}

// UpdateProject changes a stored project's name, data or both.
func (c *Client) UpdateProject(ctx context.Context, id int64, userID string, req UpdateProjectRequest) (*SaveResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid update request: %w", err)
	}

	body := struct {
		UserID string `json:"userId"`
		UpdateProjectRequest
	}{UserID: userID, UpdateProjectRequest: req}

	var result SaveResult
	if err := c.doRequest(ctx, "PUT", fmt.Sprintf("/api/projects/%d", id), body, &result); err != nil {
		return nil, fmt.Errorf("updating project %d: %w", id, err)
	}

	c.logger.Info("updated project", "id", id)
	return &result, nil
}

// DeleteProject removes a stored project.
func (c *Client) DeleteProject(ctx context.Context, id int64, userID string) (*DeleteResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}

	path := pathWithQuery(fmt.Sprintf("/api/projects/%d", id),
		map[string]string{"userId": userID})

	var result DeleteResult
	if err := c.doRequest(ctx, "DELETE", path, nil, &result); err != nil {
		return nil, fmt.Errorf("deleting project %d: %w", id, err)
	}

	c.logger.Info("deleted project", "id", id)
	return &result, nil
}

// Health probes the service's health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.doRequest(ctx, "GET", "/health", nil, &status); err != nil {
		return nil, fmt.Errorf("checking service health: %w", err)
	}
	return &status, nil
}

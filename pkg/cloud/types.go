package cloud

import (
	"time"

	"github.com/araddon/dateparse"
)

// ProjectRecord is a stored project as the record endpoints return it.
// Field names follow the service's storage rows, hence the snake_case.
type ProjectRecord struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	ProjectName string `json:"project_name"`
	ProjectData string `json:"project_data"` // Base64 bundle text
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreatedTime parses the record's creation timestamp. The service's
// storage backends disagree on formats (RFC 3339 vs "2006-01-02
// 15:04:05"), so parsing is lenient.
func (r *ProjectRecord) CreatedTime() (time.Time, error) {
	return dateparse.ParseAny(r.CreatedAt)
}

// UpdatedTime parses the record's last-update timestamp.
func (r *ProjectRecord) UpdatedTime() (time.Time, error) {
	return dateparse.ParseAny(r.UpdatedAt)
}

// ProjectListItem is one entry of a user's project listing. Listings
// never include bundle data; fetch the record for that.
type ProjectListItem struct {
	ID          int64  `json:"id"`
	ProjectName string `json:"project_name"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// SaveResult acknowledges a create or update.
type SaveResult struct {
	Success   bool   `json:"success"`
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// DeleteResult acknowledges a delete.
type DeleteResult struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// HealthStatus is the service's health probe response.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Healthy reports whether the service called itself ready.
func (h *HealthStatus) Healthy() bool {
	return h.Status == "ok"
}

// String returns a pointer to v, for the optional fields of
// UpdateProjectRequest.
func String(v string) *string {
	return &v
}

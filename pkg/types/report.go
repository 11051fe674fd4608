package types

import (
	"encoding/json"
	"time"
)

// Report status labels.
const (
	StatusResolved   = "Resolved"
	StatusUnresolved = "Unresolved"
)

// Report is an immutable crime report. Values are produced by Builder and
// never change afterwards; an "update" is a new Report carrying the same ID.
type Report struct {
	id          string
	description string
	location    string
	reportedAt  time.Time
	category    Category
	reporterID  string
	resolved    bool
}

// ID returns the report identity.
func (r Report) ID() string { return r.id }

// Description returns the free-text account of the incident.
func (r Report) Description() string { return r.description }

// Location returns where the incident happened.
func (r Report) Location() string { return r.location }

// ReportedAt returns when the report was filed.
func (r Report) ReportedAt() time.Time { return r.reportedAt }

// Category returns the report category.
func (r Report) Category() Category { return r.category }

// ReporterID identifies who filed the report.
func (r Report) ReporterID() string { return r.reporterID }

// Resolved reports whether the case has been closed.
func (r Report) Resolved() bool { return r.resolved }

// Status returns StatusResolved or StatusUnresolved.
func (r Report) Status() string {
	if r.resolved {
		return StatusResolved
	}
	return StatusUnresolved
}

// IsZero reports whether r is the zero Report, which stands for "no report".
// Every built Report carries a non-empty ID, so a zero ID is sufficient.
func (r Report) IsZero() bool {
	return r.id == ""
}

// Equal reports whether r and other hold the same field values.
// Timestamps are compared with time.Time.Equal.
func (r Report) Equal(other Report) bool {
	return r.id == other.id &&
		r.description == other.description &&
		r.location == other.location &&
		r.reportedAt.Equal(other.reportedAt) &&
		r.category == other.category &&
		r.reporterID == other.reporterID &&
		r.resolved == other.resolved
}

// Builder returns a Builder seeded with every field of r, so a replacement
// report can be derived by overriding only what changes.
func (r Report) Builder() *Builder {
	return &Builder{
		id:          r.id,
		description: r.description,
		location:    r.location,
		reportedAt:  r.reportedAt,
		category:    r.category,
		reporterID:  r.reporterID,
		resolved:    r.resolved,
	}
}

// reportJSON is the wire shape used for --json output.
type reportJSON struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ReportedAt  time.Time `json:"reported_at"`
	Category    Category  `json:"category"`
	ReporterID  string    `json:"reporter_id"`
	Resolved    bool      `json:"resolved"`
}

// MarshalJSON encodes the report with snake_case keys.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		ID:          r.id,
		Description: r.description,
		Location:    r.location,
		ReportedAt:  r.reportedAt,
		Category:    r.category,
		ReporterID:  r.reporterID,
		Resolved:    r.resolved,
	})
}

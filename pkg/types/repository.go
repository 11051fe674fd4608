package types

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Repository is the generic create/read/update/delete contract.
type Repository[T any, ID comparable] interface {
	// Create stores entity. Returns ErrInvalidArgument for an absent entity
	// and ErrDuplicateID when the identity is already taken.
	Create(entity T) (T, error)

	// Read returns the entity with the given identity. The boolean is false
	// when nothing matches; that is not an error.
	Read(id ID) (T, bool, error)

	// ReadAll returns every stored entity in insertion order. Never nil.
	ReadAll() []T

	// Update replaces the stored entity sharing entity's identity and moves
	// it to the end of insertion order. Returns ErrNotFound when no entity
	// has that identity.
	Update(entity T) (T, error)

	// Delete removes the entity with the given identity and reports whether
	// anything was removed.
	Delete(id ID) (bool, error)
}

// ReportRepository adds the report search operations. Results preserve
// insertion order and are empty (not nil) when nothing matches.
type ReportRepository interface {
	Repository[Report, string]

	// FindByCategory returns reports with exactly category c.
	FindByCategory(c Category) ([]Report, error)

	// FindByLocation returns reports whose location contains substring,
	// ignoring case.
	FindByLocation(substring string) ([]Report, error)

	// FindByReporterID returns reports filed by reporterID (case-sensitive).
	FindByReporterID(reporterID string) ([]Report, error)

	// FindByResolutionStatus returns reports whose resolved flag equals resolved.
	FindByResolutionStatus(resolved bool) []Report
}

// ReportStore is a ReportRepository with a lifecycle.
type ReportStore interface {
	ReportRepository

	// Len returns the number of stored reports.
	Len() int

	// Close releases backend resources. Idempotent.
	Close() error
}

// Store operation errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateID     = errors.New("report already exists")
	ErrNotFound        = errors.New("report not found")
	ErrStoreClosed     = errors.New("store is closed")
)

// LocationContains reports whether location contains substring under
// Unicode case folding. Shared by every backend so searches agree.
func LocationContains(location, substring string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(location), fold.String(substring))
}

// RequireText returns ErrInvalidArgument naming the argument when value is
// empty after trimming whitespace.
func RequireText(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrInvalidArgument, name)
	}
	return nil
}

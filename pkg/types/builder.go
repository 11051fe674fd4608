package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
)

// Report construction errors. Every field error wraps ErrInvalidReport.
var (
	ErrInvalidReport    = errors.New("invalid report")
	ErrEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrInvalidReport)
	ErrEmptyLocation    = fmt.Errorf("%w: location cannot be empty", ErrInvalidReport)
	ErrMissingCategory  = fmt.Errorf("%w: category cannot be empty", ErrInvalidReport)
	ErrUnknownCategory  = fmt.Errorf("%w: unknown category", ErrInvalidReport)
	ErrEmptyReporterID  = fmt.Errorf("%w: reporter ID cannot be empty", ErrInvalidReport)
	ErrEmptyID          = fmt.Errorf("%w: ID cannot be empty", ErrInvalidReport)
)

// reportDraft is the staging shape checked by Build. Field order is the
// order in which violations are reported; only the first one is returned.
type reportDraft struct {
	Description string   `validate:"notblank"`
	Location    string   `validate:"notblank"`
	Category    Category `validate:"required,category"`
	ReporterID  string   `validate:"notblank"`
	ID          string   `validate:"notblank"`
}

// draftFieldErrors maps a failing draft field to its sentinel.
var draftFieldErrors = map[string]error{
	"Description": ErrEmptyDescription,
	"Location":    ErrEmptyLocation,
	"Category":    ErrMissingCategory,
	"ReporterID":  ErrEmptyReporterID,
	"ID":          ErrEmptyID,
}

var reportValidate = newReportValidator()

func newReportValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	if err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		c, ok := fl.Field().Interface().(Category)
		return ok && c.Valid()
	}); err != nil {
		panic(fmt.Sprintf("register category: %v", err))
	}
	return v
}

// Builder accumulates report fields and freezes them into a Report.
// Setters overwrite the previous value and return the builder for chaining.
type Builder struct {
	id          string
	description string
	location    string
	reportedAt  time.Time
	category    Category
	reporterID  string
	resolved    bool
}

// NewBuilder returns a Builder with a fresh ID, the current time as the
// report time, and the resolved flag cleared.
func NewBuilder() *Builder {
	return &Builder{
		id:         generateUUID(),
		reportedAt: time.Now(),
	}
}

// WithID replaces the generated ID.
func (b *Builder) WithID(id string) *Builder {
	b.id = id
	return b
}

func (b *Builder) WithDescription(description string) *Builder {
	b.description = description
	return b
}

func (b *Builder) WithLocation(location string) *Builder {
	b.location = location
	return b
}

// WithReportedAt replaces the default report time.
func (b *Builder) WithReportedAt(t time.Time) *Builder {
	b.reportedAt = t
	return b
}

func (b *Builder) WithCategory(c Category) *Builder {
	b.category = c
	return b
}

func (b *Builder) WithReporterID(reporterID string) *Builder {
	b.reporterID = reporterID
	return b
}

func (b *Builder) WithResolved(resolved bool) *Builder {
	b.resolved = resolved
	return b
}

// Build validates the staged fields and returns an immutable Report.
// Checks run in order description, location, category, reporter ID; the
// first failure is returned as one of the ErrEmpty*/ErrMissingCategory
// sentinels. The builder may be reused after Build.
func (b *Builder) Build() (Report, error) {
	draft := reportDraft{
		Description: b.description,
		Location:    b.location,
		Category:    b.category,
		ReporterID:  b.reporterID,
		ID:          b.id,
	}
	if err := reportValidate.Struct(draft); err != nil {
		return Report{}, draftError(err)
	}

	return Report{
		id:          b.id,
		description: b.description,
		location:    b.location,
		reportedAt:  b.reportedAt,
		category:    b.category,
		reporterID:  b.reporterID,
		resolved:    b.resolved,
	}, nil
}

// draftError converts validator output into the first field sentinel.
func draftError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	first := verrs[0]
	if first.StructField() == "Category" && first.Tag() == "category" {
		return ErrUnknownCategory
	}
	if sentinel, ok := draftFieldErrors[first.StructField()]; ok {
		return sentinel
	}
	return fmt.Errorf("%w: %s failed %s", ErrInvalidReport, first.StructField(), first.Tag())
}

// generateUUID generates a new UUID v7 for report IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

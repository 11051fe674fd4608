package types

import "time"

// NewReport builds an unresolved report filed now.
func NewReport(description, location string, category Category, reporterID string) (Report, error) {
	return NewBuilder().
		WithDescription(description).
		WithLocation(location).
		WithCategory(category).
		WithReporterID(reporterID).
		Build()
}

// NewReportAt builds an unresolved report with an explicit report time.
func NewReportAt(description, location string, category Category, reporterID string, reportedAt time.Time) (Report, error) {
	return NewBuilder().
		WithDescription(description).
		WithLocation(location).
		WithCategory(category).
		WithReporterID(reporterID).
		WithReportedAt(reportedAt).
		Build()
}

// NewResolvedReport builds a report that is already marked resolved.
func NewResolvedReport(description, location string, category Category, reporterID string) (Report, error) {
	return NewBuilder().
		WithDescription(description).
		WithLocation(location).
		WithCategory(category).
		WithReporterID(reporterID).
		WithResolved(true).
		Build()
}

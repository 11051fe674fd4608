package cli

import (
	"fmt"
	"time"

	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

// sampleReport describes a report loaded by --seed.
type sampleReport struct {
	description string
	location    string
	category    types.Category
	reporterID  string
	age         time.Duration
	resolved    bool
}

// sampleReports are loaded in this order so the menu has something to show.
var sampleReports = []sampleReport{
	{"Bicycle stolen from rack", "City park", types.CategoryTheft, "reporter-001", 72 * time.Hour, false},
	{"Car window smashed", "Downtown parking lot", types.CategoryVandalism, "reporter-002", 48 * time.Hour, false},
	{"Handbag snatched", "City park at night", types.CategoryRobbery, "reporter-001", 30 * time.Hour, false},
	{"House broken into", "14 Main Street", types.CategoryBurglary, "reporter-003", 24 * time.Hour, true},
	{"Card details used online", "Harbour mall", types.CategoryFraud, "reporter-004", 6 * time.Hour, true},
}

// seedReports adds the sample reports to s and returns how many were created.
func seedReports(s types.ReportRepository) (int, error) {
	now := time.Now()
	for i, sr := range sampleReports {
		r, err := types.NewBuilder().
			WithDescription(sr.description).
			WithLocation(sr.location).
			WithCategory(sr.category).
			WithReporterID(sr.reporterID).
			WithReportedAt(now.Add(-sr.age)).
			WithResolved(sr.resolved).
			Build()
		if err != nil {
			return i, fmt.Errorf("build sample %d: %w", i+1, err)
		}
		if _, err := s.Create(r); err != nil {
			return i, fmt.Errorf("create sample %d: %w", i+1, err)
		}
	}
	return len(sampleReports), nil
}

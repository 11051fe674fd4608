// Package storetest holds the behavioral tests every ReportStore backend
// must pass. Backend packages call Run from their own _test.go files.
package storetest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

// Factory returns a fresh, empty store. Implementations should register
// cleanup with t.Cleanup.
type Factory func(t *testing.T) types.ReportStore

// Run executes the full contract suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s types.ReportStore)
	}{
		{"create then read returns equal report", testCreateRead},
		{"create rejects zero report", testCreateZero},
		{"create rejects duplicate ID", testCreateDuplicate},
		{"read rejects blank ID", testReadBlank},
		{"read missing ID is not an error", testReadMissing},
		{"read all preserves insertion order", testReadAllOrder},
		{"read all on empty store", testReadAllEmpty},
		{"update replaces whole record and moves it last", testUpdate},
		{"update missing ID fails", testUpdateMissing},
		{"update rejects zero report", testUpdateZero},
		{"delete existing and missing", testDelete},
		{"delete rejects blank ID", testDeleteBlank},
		{"find by category", testFindByCategory},
		{"find by category rejects absent category", testFindByCategoryInvalid},
		{"find by location is case-insensitive substring", testFindByLocation},
		{"find by location rejects blank", testFindByLocationBlank},
		{"find by reporter is exact", testFindByReporter},
		{"find by reporter rejects blank", testFindByReporterBlank},
		{"find by resolution status", testFindByStatus},
		{"results are empty not nil", testEmptyResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

// mustReport builds a report or fails the test.
func mustReport(t *testing.T, b *types.Builder) types.Report {
	t.Helper()
	r, err := b.Build()
	require.NoError(t, err)
	return r
}

// report builds an unresolved report with the given fields and a stable,
// second-aligned timestamp.
func report(t *testing.T, id string, c types.Category, location, reporter string) types.Report {
	t.Helper()
	return mustReport(t, types.NewBuilder().
		WithID(id).
		WithDescription(fmt.Sprintf("incident %s", id)).
		WithLocation(location).
		WithCategory(c).
		WithReporterID(reporter).
		WithReportedAt(time.Date(2025, 3, 28, 14, 30, 0, 0, time.UTC)))
}

func ids(reports []types.Report) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.ID()
	}
	return out
}

func testCreateRead(t *testing.T, s types.ReportStore) {
	r := mustReport(t, types.NewBuilder().
		WithDescription("Stolen bicycle").
		WithLocation("City park").
		WithCategory(types.CategoryTheft).
		WithReporterID("reporter-1"))

	created, err := s.Create(r)
	require.NoError(t, err)
	assert.True(t, r.Equal(created), "Create returns the report unchanged")

	got, ok, err := s.Read(r.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, r.Equal(got), "read %+v, want %+v", got, r)
	assert.Equal(t, 1, s.Len())
}

func testCreateZero(t *testing.T, s types.ReportStore) {
	_, err := s.Create(types.Report{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
	assert.Equal(t, 0, s.Len())
}

func testCreateDuplicate(t *testing.T, s types.ReportStore) {
	first := report(t, "x", types.CategoryTheft, "City park", "r1")
	_, err := s.Create(first)
	require.NoError(t, err)

	second := report(t, "x", types.CategoryFraud, "Mall", "r2")
	_, err = s.Create(second)
	assert.ErrorIs(t, err, types.ErrDuplicateID)
	assert.Equal(t, 1, s.Len())

	got, ok, err := s.Read("x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, first.Equal(got), "original must survive a rejected duplicate")
}

func testReadBlank(t *testing.T, s types.ReportStore) {
	for _, id := range []string{"", "   "} {
		_, _, err := s.Read(id)
		assert.ErrorIs(t, err, types.ErrInvalidArgument, "id %q", id)
	}
}

func testReadMissing(t *testing.T, s types.ReportStore) {
	got, ok, err := s.Read("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func testReadAllOrder(t *testing.T, s types.ReportStore) {
	for _, id := range []string{"c", "a", "b"} {
		_, err := s.Create(report(t, id, types.CategoryOther, "Somewhere", "r1"))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids(s.ReadAll()))
}

func testReadAllEmpty(t *testing.T, s types.ReportStore) {
	all := s.ReadAll()
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func testUpdate(t *testing.T, s types.ReportStore) {
	a := report(t, "a", types.CategoryTheft, "City park", "r1")
	b := report(t, "b", types.CategoryFraud, "Mall", "r2")
	for _, r := range []types.Report{a, b} {
		_, err := s.Create(r)
		require.NoError(t, err)
	}

	replacement := mustReport(t, a.Builder().
		WithDescription("Recovered bicycle").
		WithCategory(types.CategoryRobbery).
		WithResolved(true))

	updated, err := s.Update(replacement)
	require.NoError(t, err)
	assert.True(t, replacement.Equal(updated))
	assert.Equal(t, 2, s.Len())

	got, ok, err := s.Read("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, replacement.Equal(got))
	assert.Equal(t, []string{"b", "a"}, ids(s.ReadAll()), "replacement moves to the end")

	other, ok, err := s.Read("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, b.Equal(other), "other records are untouched")
}

func testUpdateMissing(t *testing.T, s types.ReportStore) {
	_, err := s.Create(report(t, "a", types.CategoryTheft, "City park", "r1"))
	require.NoError(t, err)

	_, err = s.Update(report(t, "ghost", types.CategoryTheft, "City park", "r1"))
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, []string{"a"}, ids(s.ReadAll()))
}

func testUpdateZero(t *testing.T, s types.ReportStore) {
	_, err := s.Update(types.Report{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func testDelete(t *testing.T, s types.ReportStore) {
	for _, id := range []string{"a", "b"} {
		_, err := s.Create(report(t, id, types.CategoryTheft, "City park", "r1"))
		require.NoError(t, err)
	}

	removed, err := s.Delete("a")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 1, s.Len())

	_, ok, err := s.Read("a")
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err = s.Delete("a")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 1, s.Len())
}

func testDeleteBlank(t *testing.T, s types.ReportStore) {
	_, err := s.Delete(" ")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func testFindByCategory(t *testing.T, s types.ReportStore) {
	for _, r := range []types.Report{
		report(t, "A", types.CategoryTheft, "City park", "r1"),
		report(t, "B", types.CategoryFraud, "Mall", "r1"),
		report(t, "C", types.CategoryTheft, "Station", "r2"),
	} {
		_, err := s.Create(r)
		require.NoError(t, err)
	}

	thefts, err := s.FindByCategory(types.CategoryTheft)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, ids(thefts))

	assaults, err := s.FindByCategory(types.CategoryAssault)
	require.NoError(t, err)
	assert.Empty(t, assaults)
}

func testFindByCategoryInvalid(t *testing.T, s types.ReportStore) {
	_, err := s.FindByCategory("")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = s.FindByCategory("ARSON")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func testFindByLocation(t *testing.T, s types.ReportStore) {
	for _, r := range []types.Report{
		report(t, "1", types.CategoryTheft, "City park", "r1"),
		report(t, "2", types.CategoryTheft, "Main street", "r1"),
		report(t, "3", types.CategoryTheft, "Downtown parking lot", "r1"),
		report(t, "4", types.CategoryTheft, "City park at night", "r1"),
		report(t, "5", types.CategoryTheft, "Harbour", "r1"),
	} {
		_, err := s.Create(r)
		require.NoError(t, err)
	}

	got, err := s.FindByLocation("park")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4"}, ids(got))

	got, err = s.FindByLocation("PARK")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4"}, ids(got))

	got, err = s.FindByLocation("airport")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testFindByLocationBlank(t *testing.T, s types.ReportStore) {
	_, err := s.FindByLocation("")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func testFindByReporter(t *testing.T, s types.ReportStore) {
	for _, r := range []types.Report{
		report(t, "1", types.CategoryTheft, "City park", "reporter-1"),
		report(t, "2", types.CategoryFraud, "Mall", "reporter-2"),
		report(t, "3", types.CategoryAssault, "Station", "reporter-1"),
		report(t, "4", types.CategoryAssault, "Station", "REPORTER-1"),
	} {
		_, err := s.Create(r)
		require.NoError(t, err)
	}

	got, err := s.FindByReporterID("reporter-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func testFindByReporterBlank(t *testing.T, s types.ReportStore) {
	_, err := s.FindByReporterID("\t")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func testFindByStatus(t *testing.T, s types.ReportStore) {
	open1 := report(t, "1", types.CategoryTheft, "City park", "r1")
	closed := mustReport(t, report(t, "2", types.CategoryFraud, "Mall", "r1").Builder().WithResolved(true))
	open2 := report(t, "3", types.CategoryTheft, "Station", "r1")
	for _, r := range []types.Report{open1, closed, open2} {
		_, err := s.Create(r)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"1", "3"}, ids(s.FindByResolutionStatus(false)))
	assert.Equal(t, []string{"2"}, ids(s.FindByResolutionStatus(true)))
}

func testEmptyResults(t *testing.T, s types.ReportStore) {
	byCategory, err := s.FindByCategory(types.CategoryFraud)
	require.NoError(t, err)
	assert.NotNil(t, byCategory)

	byLocation, err := s.FindByLocation("park")
	require.NoError(t, err)
	assert.NotNil(t, byLocation)

	byReporter, err := s.FindByReporterID("r1")
	require.NoError(t, err)
	assert.NotNil(t, byReporter)

	assert.NotNil(t, s.FindByResolutionStatus(true))
}

package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyinginsectsunpig/crimereport/internal/logger"
	"github.com/flyinginsectsunpig/crimereport/internal/memory"
	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

var fixedTime = time.Date(2025, 3, 28, 14, 30, 0, 0, time.UTC)

// runScript feeds script to a fresh menu over s and returns everything it
// printed. New reports get IDs report-1, report-2, ... and fixedTime.
func runScript(t *testing.T, s types.ReportStore, script string) string {
	t.Helper()
	var out bytes.Buffer
	m := newMenu(strings.NewReader(script), &out, s, logger.Discard())
	n := 0
	m.newID = func() string {
		n++
		return fmt.Sprintf("report-%d", n)
	}
	m.now = func() time.Time { return fixedTime }
	require.NoError(t, m.run())
	return out.String()
}

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	for _, r := range []struct {
		id, location, reporter string
		category               types.Category
		resolved               bool
	}{
		{"r-1", "City park", "reporter-1", types.CategoryTheft, false},
		{"r-2", "Main street", "reporter-2", types.CategoryFraud, true},
		{"r-3", "Downtown parking lot", "reporter-1", types.CategoryVandalism, false},
	} {
		rep, err := types.NewBuilder().
			WithID(r.id).
			WithDescription("incident " + r.id).
			WithLocation(r.location).
			WithCategory(r.category).
			WithReporterID(r.reporter).
			WithReportedAt(fixedTime).
			WithResolved(r.resolved).
			Build()
		require.NoError(t, err)
		_, err = s.Create(rep)
		require.NoError(t, err)
	}
	return s
}

func TestMenuEmptySessionGolden(t *testing.T) {
	out := runScript(t, memory.NewStore(), "2\n0\n")

	g := goldie.New(t)
	g.Assert(t, "menu_empty_session", []byte(out))
}

func TestMenuReportThenView(t *testing.T) {
	s := memory.NewStore()
	out := runScript(t, s, "1\nStolen bicycle\nCity park\n1\nreporter-1\n2\n0\n")

	assert.Contains(t, out, "Crime reported successfully. Report ID: report-1")
	assert.Contains(t, out, "Total reports: 1")
	assert.Contains(t, out, "Type: Theft")
	assert.Contains(t, out, "Reported At: 2025-03-28 14:30:00")
	assert.Contains(t, out, "Status: Unresolved")
	assert.True(t, strings.HasSuffix(out, goodbyeText+"\n"))

	r, ok, err := s.Read("report-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Stolen bicycle", r.Description())
	assert.Equal(t, types.CategoryTheft, r.Category())
}

func TestMenuReportInvalidTypeDefaultsToOther(t *testing.T) {
	s := memory.NewStore()
	out := runScript(t, s, "1\nSuspicious parcel\nStation\n12\nreporter-5\n0\n")

	assert.Contains(t, out, "Invalid choice. Defaulting to Other.")
	r, ok, err := s.Read("report-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.CategoryOther, r.Category())
}

func TestMenuReportValidationError(t *testing.T) {
	s := memory.NewStore()
	out := runScript(t, s, "1\n\nCity park\n1\nreporter-1\n0\n")

	assert.Contains(t, out, "Could not file report: invalid report: description cannot be empty")
	assert.Equal(t, 0, s.Len())
}

func TestMenuInputRecovery(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"non-numeric choice", "abc\n0\n", "Please enter a valid number."},
		{"out of range choice", "42\n0\n", "Invalid choice. Please try again."},
		{"negative choice", "-1\n0\n", "Invalid choice. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, memory.NewStore(), tt.script)
			assert.Contains(t, out, tt.want)
			assert.True(t, strings.HasSuffix(out, goodbyeText+"\n"))
		})
	}
}

func TestMenuEndOfInputExitsCleanly(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"at main menu", ""},
		{"mid report", "1\nStolen bicycle\n"},
		{"mid update", "6\nr-1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seeded(t)
			out := runScript(t, s, tt.script)
			assert.True(t, strings.HasSuffix(out, "\n"+goodbyeText+"\n"))
			assert.Equal(t, 3, s.Len(), "nothing is stored or changed")
		})
	}
}

func TestMenuSearchByID(t *testing.T) {
	out := runScript(t, seeded(t), "3\nr-2\n3\nghost\n3\n \n0\n")

	assert.Contains(t, out, "ID: r-2")
	assert.Contains(t, out, "Type: Fraud")
	assert.Contains(t, out, "Status: Resolved")
	assert.Contains(t, out, "No report found with ID: ghost")
	assert.Contains(t, out, "Search failed: invalid argument: id cannot be empty")
}

func TestMenuSearchByType(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{"matches", "4\n1\n0\n", []string{"Reports of type Theft:", "Total reports: 1", "ID: r-1"}},
		{"no matches", "4\n3\n0\n", []string{"No reports found of type: Assault"}},
		{"invalid choice aborts", "4\n8\n0\n", []string{"Invalid choice.\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, seeded(t), tt.script)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestMenuSearchByLocation(t *testing.T) {
	out := runScript(t, seeded(t), "5\nPARK\n0\n")
	assert.Contains(t, out, "Reports at location containing 'PARK':")
	assert.Contains(t, out, "Total reports: 2")
	assert.Contains(t, out, "ID: r-1")
	assert.Contains(t, out, "ID: r-3")
	assert.NotContains(t, out, "ID: r-2")

	out = runScript(t, seeded(t), "5\nairport\n5\n\n0\n")
	assert.Contains(t, out, "No reports found at location containing: airport")
	assert.Contains(t, out, "Search failed: invalid argument: location cannot be empty")
}

func TestMenuUpdateStatus(t *testing.T) {
	s := seeded(t)
	out := runScript(t, s, "6\nr-1\nyes\n0\n")

	assert.Contains(t, out, "Current report details:")
	assert.Contains(t, out, "Report status updated to Resolved.")

	r, ok, err := s.Read("r-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, r.Resolved())
	assert.Equal(t, "incident r-1", r.Description(), "other fields are kept")
	assert.Equal(t, []string{"r-2", "r-3", "r-1"}, reportIDs(s.ReadAll()), "updated report moves last")

	out = runScript(t, s, "6\nr-2\nnope\n6\nghost\n0\n")
	assert.Contains(t, out, "Report status updated to Unresolved.")
	assert.Contains(t, out, "No report found with ID: ghost")
}

func TestMenuSearchByReporter(t *testing.T) {
	out := runScript(t, seeded(t), "7\nreporter-1\n7\nREPORTER-1\n0\n")
	assert.Contains(t, out, "Reports filed by reporter-1:")
	assert.Contains(t, out, "Total reports: 2")
	assert.Contains(t, out, "No reports found for reporter: REPORTER-1")
}

func TestMenuViewByStatus(t *testing.T) {
	out := runScript(t, seeded(t), "8\nr\n8\nunresolved\n8\nmaybe\n0\n")
	assert.Contains(t, out, "Reports that are resolved:")
	assert.Contains(t, out, "Reports that are unresolved:")
	assert.Contains(t, out, "Invalid choice.\n")

	out = runScript(t, memory.NewStore(), "8\nr\n0\n")
	assert.Contains(t, out, "No resolved reports.")
}

func TestMenuDelete(t *testing.T) {
	s := seeded(t)
	out := runScript(t, s, "9\nr-1\n9\nr-1\n0\n")

	assert.Contains(t, out, "Report r-1 deleted.")
	assert.Contains(t, out, "No report found with ID: r-1")
	assert.Equal(t, 2, s.Len())
}

func reportIDs(reports []types.Report) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.ID()
	}
	return out
}

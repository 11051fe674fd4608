package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

// reportRow is the reports table row shape.
type reportRow struct {
	Seq         int64  `db:"seq"`
	ReportID    string `db:"report_id"`
	Description string `db:"description"`
	Location    string `db:"location"`
	ReportedAt  string `db:"reported_at"`
	Category    string `db:"category"`
	ReporterID  string `db:"reporter_id"`
	Resolved    bool   `db:"resolved"`
}

// dehydrateReport converts a Report into insert parameters.
func dehydrateReport(r types.Report) map[string]any {
	resolved := 0
	if r.Resolved() {
		resolved = 1
	}
	return map[string]any{
		"report_id":   r.ID(),
		"description": r.Description(),
		"location":    r.Location(),
		"reported_at": r.ReportedAt().UTC().Format(time.RFC3339Nano),
		"category":    string(r.Category()),
		"reporter_id": r.ReporterID(),
		"resolved":    resolved,
	}
}

// hydrateReport rebuilds an immutable Report from a row.
func hydrateReport(row reportRow) (types.Report, error) {
	reportedAt, err := time.Parse(time.RFC3339Nano, row.ReportedAt)
	if err != nil {
		return types.Report{}, fmt.Errorf("parsing reported_at: %w", err)
	}
	return types.NewBuilder().
		WithID(row.ReportID).
		WithDescription(row.Description).
		WithLocation(row.Location).
		WithReportedAt(reportedAt.Local()).
		WithCategory(types.Category(row.Category)).
		WithReporterID(row.ReporterID).
		WithResolved(row.Resolved).
		Build()
}

const insertReport = `INSERT INTO reports (report_id, description, location, reported_at, category, reporter_id, resolved)
VALUES (:report_id, :description, :location, :reported_at, :category, :reporter_id, :resolved)`

// Create inserts r. Returns ErrInvalidArgument for the zero Report and
// ErrDuplicateID when the ID is taken.
func (b *Backend) Create(r types.Report) (types.Report, error) {
	if r.IsZero() {
		return types.Report{}, fmt.Errorf("%w: report cannot be empty", types.ErrInvalidArgument)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return types.Report{}, types.ErrStoreClosed
	}

	exists, err := b.existsLocked(r.ID())
	if err != nil {
		return types.Report{}, err
	}
	if exists {
		return types.Report{}, fmt.Errorf("%w: %s", types.ErrDuplicateID, r.ID())
	}

	if _, err := b.db.NamedExec(insertReport, dehydrateReport(r)); err != nil {
		return types.Report{}, fmt.Errorf("inserting report: %w", err)
	}

	b.log.WithFields(logrus.Fields{
		"report_id": r.ID(),
		"category":  r.Category(),
	}).Debug("report created")
	return r, nil
}

// Read returns the report with the given ID.
func (b *Backend) Read(id string) (types.Report, bool, error) {
	if err := types.RequireText("id", id); err != nil {
		return types.Report{}, false, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return types.Report{}, false, types.ErrStoreClosed
	}

	var row reportRow
	err := b.db.Get(&row, "SELECT "+reportColumns+" FROM reports WHERE report_id = ? ORDER BY seq LIMIT 1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Report{}, false, nil
	}
	if err != nil {
		return types.Report{}, false, fmt.Errorf("getting report %s: %w", id, err)
	}
	r, err := hydrateReport(row)
	if err != nil {
		return types.Report{}, false, fmt.Errorf("hydrating report %s: %w", id, err)
	}
	return r, true, nil
}

// ReadAll returns every report ordered by insertion.
func (b *Backend) ReadAll() []types.Report {
	reports, err := b.selectReports("")
	if err != nil {
		b.log.WithError(err).Error("reading all reports")
		return []types.Report{}
	}
	return reports
}

// Update deletes the stored row for r's ID and inserts r as the newest row,
// in one transaction. Returns ErrNotFound when nothing has that ID.
func (b *Backend) Update(r types.Report) (types.Report, error) {
	if r.IsZero() {
		return types.Report{}, fmt.Errorf("%w: report cannot be empty", types.ErrInvalidArgument)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return types.Report{}, types.ErrStoreClosed
	}

	tx, err := b.db.Beginx()
	if err != nil {
		return types.Report{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM reports WHERE report_id = ?", r.ID())
	if err != nil {
		return types.Report{}, fmt.Errorf("removing old report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.Report{}, fmt.Errorf("checking removed rows: %w", err)
	}
	if n == 0 {
		return types.Report{}, fmt.Errorf("%w: %s", types.ErrNotFound, r.ID())
	}

	if _, err := tx.NamedExec(insertReport, dehydrateReport(r)); err != nil {
		return types.Report{}, fmt.Errorf("inserting replacement: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Report{}, fmt.Errorf("committing update: %w", err)
	}

	b.log.WithFields(logrus.Fields{
		"report_id": r.ID(),
		"resolved":  r.Resolved(),
	}).Debug("report updated")
	return r, nil
}

// Delete removes the report with the given ID and reports whether a row
// was removed.
func (b *Backend) Delete(id string) (bool, error) {
	if err := types.RequireText("id", id); err != nil {
		return false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false, types.ErrStoreClosed
	}

	res, err := b.db.Exec("DELETE FROM reports WHERE report_id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	b.log.WithField("report_id", id).Debug("report deleted")
	return true, nil
}

// FindByCategory returns reports filed under c.
func (b *Backend) FindByCategory(c types.Category) ([]types.Report, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: category %q", types.ErrInvalidArgument, c)
	}
	return b.selectReports("WHERE category = ?", string(c))
}

// FindByLocation returns reports whose location contains substring,
// ignoring case. Matching runs in Go so it folds case the same way as the
// memory store; SQLite's LOWER only handles ASCII.
func (b *Backend) FindByLocation(substring string) ([]types.Report, error) {
	if err := types.RequireText("location", substring); err != nil {
		return nil, err
	}
	all, err := b.selectReports("")
	if err != nil {
		return nil, err
	}
	out := []types.Report{}
	for _, r := range all {
		if types.LocationContains(r.Location(), substring) {
			out = append(out, r)
		}
	}
	return out, nil
}

// FindByReporterID returns reports filed by reporterID. SQLite's = on TEXT
// is case-sensitive under the default BINARY collation.
func (b *Backend) FindByReporterID(reporterID string) ([]types.Report, error) {
	if err := types.RequireText("reporter ID", reporterID); err != nil {
		return nil, err
	}
	return b.selectReports("WHERE reporter_id = ?", reporterID)
}

// FindByResolutionStatus returns reports whose resolved flag equals resolved.
func (b *Backend) FindByResolutionStatus(resolved bool) []types.Report {
	flag := 0
	if resolved {
		flag = 1
	}
	reports, err := b.selectReports("WHERE resolved = ?", flag)
	if err != nil {
		b.log.WithError(err).Error("finding reports by resolution status")
		return []types.Report{}
	}
	return reports
}

// selectReports runs a SELECT with the given WHERE clause, ordered by
// insertion, and hydrates the rows. Returns an empty slice, not nil.
func (b *Backend) selectReports(where string, args ...any) ([]types.Report, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, types.ErrStoreClosed
	}

	query := "SELECT " + reportColumns + " FROM reports"
	if where != "" {
		query += " " + where
	}
	query += " ORDER BY seq ASC"

	var rows []reportRow
	if err := b.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("selecting reports: %w", err)
	}

	out := make([]types.Report, 0, len(rows))
	for _, row := range rows {
		r, err := hydrateReport(row)
		if err != nil {
			return nil, fmt.Errorf("hydrating report %s: %w", row.ReportID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// existsLocked reports whether a row with the given ID exists.
// The caller must hold b.mu.
func (b *Backend) existsLocked(id string) (bool, error) {
	var n int
	if err := b.db.Get(&n, "SELECT COUNT(*) FROM reports WHERE report_id = ?", id); err != nil {
		return false, fmt.Errorf("checking report existence: %w", err)
	}
	return n > 0, nil
}

// Package memory implements the in-memory report store: an insertion-ordered
// slice guarded by a single RWMutex. Searches are linear scans.
package memory

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/flyinginsectsunpig/crimereport/internal/logger"
	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

// Compile-time interface check: Store must implement ReportStore.
var _ types.ReportStore = (*Store)(nil)

// Store holds reports in insertion order and enforces unique IDs.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	reports []types.Report
	log     logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{reports: []types.Report{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	return s
}

// Create appends r. Returns ErrInvalidArgument for the zero Report and
// ErrDuplicateID when a report with the same ID is already stored.
func (s *Store) Create(r types.Report) (types.Report, error) {
	if r.IsZero() {
		return types.Report{}, fmt.Errorf("%w: report cannot be empty", types.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(r.ID()) >= 0 {
		return types.Report{}, fmt.Errorf("%w: %s", types.ErrDuplicateID, r.ID())
	}
	s.reports = append(s.reports, r)

	s.log.WithFields(logrus.Fields{
		"report_id": r.ID(),
		"category":  r.Category(),
	}).Debug("report created")
	return r, nil
}

// Read returns the first report whose ID equals id.
func (s *Store) Read(id string) (types.Report, bool, error) {
	if err := types.RequireText("id", id); err != nil {
		return types.Report{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return types.Report{}, false, nil
	}
	return s.reports[i], true, nil
}

// ReadAll returns a copy of all reports in insertion order.
func (s *Store) ReadAll() []types.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Update removes the stored report with r's ID and appends r in its place
// at the end of insertion order. Returns ErrNotFound when no report has
// that ID.
func (s *Store) Update(r types.Report) (types.Report, error) {
	if r.IsZero() {
		return types.Report{}, fmt.Errorf("%w: report cannot be empty", types.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(r.ID())
	if i < 0 {
		return types.Report{}, fmt.Errorf("%w: %s", types.ErrNotFound, r.ID())
	}
	s.removeAt(i)
	s.reports = append(s.reports, r)

	s.log.WithFields(logrus.Fields{
		"report_id": r.ID(),
		"resolved":  r.Resolved(),
	}).Debug("report updated")
	return r, nil
}

// Delete removes the report with the given ID. It returns false, without
// error, when there is nothing to remove.
func (s *Store) Delete(id string) (bool, error) {
	if err := types.RequireText("id", id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.removeAt(i)

	s.log.WithField("report_id", id).Debug("report deleted")
	return true, nil
}

// FindByCategory returns reports filed under c.
func (s *Store) FindByCategory(c types.Category) ([]types.Report, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: category %q", types.ErrInvalidArgument, c)
	}
	return s.filter(func(r types.Report) bool { return r.Category() == c }), nil
}

// FindByLocation returns reports whose location contains substring,
// ignoring case.
func (s *Store) FindByLocation(substring string) ([]types.Report, error) {
	if err := types.RequireText("location", substring); err != nil {
		return nil, err
	}
	return s.filter(func(r types.Report) bool {
		return types.LocationContains(r.Location(), substring)
	}), nil
}

// FindByReporterID returns reports filed by reporterID.
func (s *Store) FindByReporterID(reporterID string) ([]types.Report, error) {
	if err := types.RequireText("reporter ID", reporterID); err != nil {
		return nil, err
	}
	return s.filter(func(r types.Report) bool { return r.ReporterID() == reporterID }), nil
}

// FindByResolutionStatus returns reports whose resolved flag equals resolved.
func (s *Store) FindByResolutionStatus(resolved bool) []types.Report {
	return s.filter(func(r types.Report) bool { return r.Resolved() == resolved })
}

// Len returns the number of stored reports.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close() error {
	return nil
}

// filter returns matching reports in insertion order, never nil.
func (s *Store) filter(match func(types.Report) bool) []types.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []types.Report{}
	for _, r := range s.reports {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// indexOf returns the position of the first report with the given ID, or -1.
// The caller must hold s.mu.
func (s *Store) indexOf(id string) int {
	for i, r := range s.reports {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

// removeAt deletes the report at position i, keeping order.
// The caller must hold s.mu for writing.
func (s *Store) removeAt(i int) {
	s.reports = append(s.reports[:i], s.reports[i+1:]...)
}


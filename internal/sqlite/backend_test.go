package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyinginsectsunpig/crimereport/internal/storetest"
	"github.com/flyinginsectsunpig/crimereport/pkg/types"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := NewBackend()
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestBackendContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) types.ReportStore {
		return newTestBackend(t)
	})
}

func TestBackend_Close(t *testing.T) {
	b := newTestBackend(t)

	r, err := types.NewReport("Stolen bicycle", "City park", types.CategoryTheft, "reporter-1")
	require.NoError(t, err)
	_, err = b.Create(r)
	require.NoError(t, err)

	require.NoError(t, b.Close())
	assert.NoError(t, b.Close(), "second Close is a no-op")

	_, err = b.Create(r)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, _, err = b.Read(r.ID())
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = b.Update(r)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = b.Delete(r.ID())
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = b.FindByCategory(types.CategoryTheft)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = b.FindByLocation("park")
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = b.FindByReporterID("reporter-1")
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	assert.Empty(t, b.ReadAll())
	assert.Empty(t, b.FindByResolutionStatus(false))
	assert.Equal(t, 0, b.Len())
}

func TestBackendsAreIsolated(t *testing.T) {
	a := newTestBackend(t)
	b := newTestBackend(t)

	r, err := types.NewReport("Broken window", "Main street", types.CategoryVandalism, "reporter-2")
	require.NoError(t, err)
	_, err = a.Create(r)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len(), "each backend owns a private in-memory database")
}

func TestRoundTripPreservesFields(t *testing.T) {
	b := newTestBackend(t)

	at := time.Date(2025, 3, 28, 14, 30, 15, 123456789, time.FixedZone("SAST", 2*60*60))
	r, err := types.NewBuilder().
		WithID("rt-1").
		WithDescription("Card skimmer found").
		WithLocation("Rue de l'École ATM").
		WithReportedAt(at).
		WithCategory(types.CategoryFraud).
		WithReporterID("reporter-9").
		WithResolved(true).
		Build()
	require.NoError(t, err)

	_, err = b.Create(r)
	require.NoError(t, err)

	got, ok, err := b.Read("rt-1")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "Card skimmer found", got.Description())
	assert.Equal(t, "Rue de l'École ATM", got.Location())
	assert.Equal(t, types.CategoryFraud, got.Category())
	assert.Equal(t, "reporter-9", got.ReporterID())
	assert.True(t, got.Resolved())
	assert.True(t, at.Equal(got.ReportedAt()), "instant survives storage, got %v", got.ReportedAt())
	assert.True(t, r.Equal(got))
}

func TestFindByLocationFoldsNonASCII(t *testing.T) {
	b := newTestBackend(t)

	r, err := types.NewBuilder().
		WithID("fold-1").
		WithDescription("Graffiti").
		WithLocation("Rue de l'ÉCOLE").
		WithCategory(types.CategoryVandalism).
		WithReporterID("reporter-3").
		Build()
	require.NoError(t, err)
	_, err = b.Create(r)
	require.NoError(t, err)

	got, err := b.FindByLocation("école")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fold-1", got[0].ID())
}

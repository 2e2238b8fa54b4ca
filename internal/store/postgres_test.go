package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_SaveAnalysis(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO analyses`).
		WithArgs(pgxmock.AnyArg(), 23.3441, 85.3096, 2.0, "Jharkhand", model.ProvenanceSynthetic,
			72.5, "high", pgxmock.AnyArg(), 0.42, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	rec, err := s.SaveAnalysis(context.Background(), sampleResult(t, 23.3441, 85.3096, model.TierHigh))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Jharkhand", rec.Region)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAnalysis(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	result := sampleResult(t, 23.3441, 85.3096, model.TierHigh)
	resultJSON, err := json.Marshal(result)
	require.NoError(t, err)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "latitude", "longitude", "radius_km", "region", "provenance",
		"total_score", "tier", "result", "elapsed_s", "created_at",
	}).AddRow("rec-1", 23.3441, 85.3096, 2.0, "Jharkhand", model.ProvenanceSynthetic,
		72.5, "high", resultJSON, 0.42, now)

	mock.ExpectQuery(`SELECT id, latitude, longitude, radius_km, region, provenance, total_score, tier, result, elapsed_s, created_at\s+FROM analyses WHERE id = \$1`).
		WithArgs("rec-1").
		WillReturnRows(rows)

	rec, err := s.GetAnalysis(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, model.TierHigh, rec.Tier)
	require.NotNil(t, rec.Result)
	assert.Equal(t, model.StatusSuccess, rec.Result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAnalysis_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, latitude, longitude, radius_km, region, provenance, total_score, tier, result, elapsed_s, created_at\s+FROM analyses WHERE id = \$1`).
		WithArgs("nonexistent").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetAnalysis(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListAnalyses(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "latitude", "longitude", "radius_km", "region", "provenance",
		"total_score", "tier", "elapsed_s", "created_at",
	}).
		AddRow("rec-1", 23.3441, 85.3096, 2.0, "Jharkhand", model.ProvenanceSynthetic, 72.5, "high", 0.42, now).
		AddRow("rec-2", 23.5, 85.5, 2.0, "Jharkhand", model.ProvenanceSynthetic, 55.0, "medium", 0.31, now.Add(-time.Minute))

	mock.ExpectQuery(`FROM analyses WHERE true AND region = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("Jharkhand", 100).
		WillReturnRows(rows)

	records, err := s.ListAnalyses(context.Background(), AnalysisFilter{Region: "Jharkhand"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec-1", records[0].ID)
	assert.Equal(t, model.TierMedium, records[1].Tier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS analyses`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

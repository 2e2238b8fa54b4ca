package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

func sampleResult(t *testing.T, lat, lon float64, tier model.Tier) *model.AnalysisResult {
	t.Helper()
	req, err := model.NewAnalysisRequest(lat, lon, 2.0)
	require.NoError(t, err)
	return &model.AnalysisResult{
		Status:  model.StatusSuccess,
		Request: req,
		Stats:   model.FeatureStats{Forests: 6, Settlements: 4},
		Coverage: model.CoverageBreakdown{
			Forest: 40, Water: 10, Agriculture: 25, Settlement: 10, Other: 15,
		},
		Assessment: model.SuitabilityAssessment{
			TotalScore: 72.5,
			Tier:       tier,
			Region:     model.RegionProfile{Name: "Jharkhand", Tribal: true},
		},
		Provenance:     model.ProvenanceSynthetic,
		ElapsedSeconds: 0.42,
		Timestamp:      time.Now().UTC(),
	}
}

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	rec, err := s.SaveAnalysis(ctx, sampleResult(t, 23.3441, 85.3096, model.TierHigh))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Jharkhand", rec.Region)

	got, err := s.GetAnalysis(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, 23.3441, got.Latitude)
	assert.Equal(t, 85.3096, got.Longitude)
	assert.Equal(t, 2.0, got.RadiusKM)
	assert.Equal(t, "Jharkhand", got.Region)
	assert.Equal(t, model.ProvenanceSynthetic, got.Provenance)
	assert.Equal(t, 72.5, got.TotalScore)
	assert.Equal(t, model.TierHigh, got.Tier)
	assert.Equal(t, 0.42, got.ElapsedSeconds)

	require.NotNil(t, got.Result)
	assert.Equal(t, model.StatusSuccess, got.Result.Status)
	assert.Equal(t, 40.0, got.Result.Coverage.Forest)
	assert.True(t, got.Result.Assessment.Region.Tribal)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.GetAnalysis(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis not found")
}

func TestSQLiteStore_ListFilters(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	_, err := s.SaveAnalysis(ctx, sampleResult(t, 23.3441, 85.3096, model.TierHigh))
	require.NoError(t, err)
	_, err = s.SaveAnalysis(ctx, sampleResult(t, 23.5, 85.5, model.TierMedium))
	require.NoError(t, err)

	other := sampleResult(t, 48.8566, 2.3522, model.TierLow)
	other.Assessment.Region = model.RegionProfile{Name: "Other Region", MixedTerrain: true}
	_, err = s.SaveAnalysis(ctx, other)
	require.NoError(t, err)

	all, err := s.ListAnalyses(ctx, AnalysisFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	jharkhand, err := s.ListAnalyses(ctx, AnalysisFilter{Region: "Jharkhand"})
	require.NoError(t, err)
	assert.Len(t, jharkhand, 2)

	medium, err := s.ListAnalyses(ctx, AnalysisFilter{Tier: model.TierMedium})
	require.NoError(t, err)
	require.Len(t, medium, 1)
	assert.Equal(t, 23.5, medium[0].Latitude)

	limited, err := s.ListAnalyses(ctx, AnalysisFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := s.ListAnalyses(ctx, AnalysisFilter{Region: "Chhattisgarh"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

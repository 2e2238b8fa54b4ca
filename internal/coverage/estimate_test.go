package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

func TestFromCounts_NoFeatures(t *testing.T) {
	cov := FromCounts(model.FeatureStats{})
	assert.Equal(t, DefaultBreakdown, cov)
	assert.InDelta(t, 100, cov.Sum(), 0.001)
}

func TestFromCounts_Derived(t *testing.T) {
	// Base = 2 water bodies + 4 forests + 2 agricultural + 2 settlements = 10.
	stats := model.FeatureStats{
		WaterBodies:       2,
		Waterways:         2,
		Forests:           4,
		AgriculturalAreas: 2,
		Settlements:       2,
	}
	cov := FromCounts(stats)

	assert.InDelta(t, 24.0, cov.Forest, 0.001)     // 4/10 * 60
	assert.InDelta(t, 7.5, cov.Water, 0.001)       // (2 + 0.5*2)/10 * 25
	assert.InDelta(t, 9.0, cov.Agriculture, 0.001) // 2/10 * 45
	assert.InDelta(t, 3.0, cov.Settlement, 0.001)  // 2/10 * 15
	assert.InDelta(t, 56.5, cov.Other, 0.001)
	assert.InDelta(t, 100, cov.Sum(), 0.1)
}

func TestFromCounts_ScalesDownWhenOver100(t *testing.T) {
	// Many waterways inflate the water share past the point where the four
	// categories exceed 100 combined.
	stats := model.FeatureStats{
		WaterBodies:       1,
		Waterways:         30,
		Forests:           1,
		AgriculturalAreas: 1,
		Settlements:       1,
	}
	cov := FromCounts(stats)

	assert.InDelta(t, 100, cov.Sum(), 0.1)
	assert.InDelta(t, 0.0, cov.Other, 0.05)
	// Relative proportions survive the scaling.
	assert.Greater(t, cov.Water, cov.Forest)
	assert.Greater(t, cov.Forest, cov.Agriculture)
	assert.Greater(t, cov.Agriculture, cov.Settlement)
}

func TestFromCounts_ForestOnly(t *testing.T) {
	cov := FromCounts(model.FeatureStats{Forests: 5})
	assert.InDelta(t, 60.0, cov.Forest, 0.001)
	assert.Equal(t, 0.0, cov.Water)
	assert.Equal(t, 0.0, cov.Agriculture)
	assert.Equal(t, 0.0, cov.Settlement)
	assert.InDelta(t, 40.0, cov.Other, 0.001)
}

func TestFromSatellite_Passthrough(t *testing.T) {
	reported := model.CoverageBreakdown{Forest: 55, Water: 10, Agriculture: 20, Settlement: 8, Other: 7}
	cov := FromSatellite(model.SatelliteAnalysis{LandUse: reported})
	assert.Equal(t, reported, cov)
}

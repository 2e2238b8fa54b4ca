package provider

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyadri-labs/fra-atlas/internal/region"
)

func seededSatellite(seed uint64) *Satellite {
	return NewSatelliteWithRand(region.DefaultTable(), rand.New(rand.NewPCG(seed, seed)))
}

func TestSatellite_ForestHighRanges(t *testing.T) {
	sat := seededSatellite(1)
	for i := 0; i < 50; i++ {
		s := sat.Summarize(mustRequest(t, 23.0, 85.0, 2))
		require.True(t, s.ImageryAvailable)
		assert.GreaterOrEqual(t, s.MeanNDVI, 0.4)
		assert.LessOrEqual(t, s.MeanNDVI, 0.7)
		assert.GreaterOrEqual(t, s.ForestCoveragePct, 45.0)
		assert.LessOrEqual(t, s.ForestCoveragePct, 70.0)
		assert.Equal(t, "good", s.VegetationHealth)
		assert.Equal(t, "low", s.DeforestationRisk)
		assert.Equal(t, 10, s.ResolutionMeters)
	}
}

func TestSatellite_OtherRegionRanges(t *testing.T) {
	sat := seededSatellite(2)
	for i := 0; i < 50; i++ {
		s := sat.Summarize(mustRequest(t, 48.0, 2.0, 2))
		assert.GreaterOrEqual(t, s.MeanNDVI, 0.2)
		assert.LessOrEqual(t, s.MeanNDVI, 0.4)
		assert.GreaterOrEqual(t, s.ForestCoveragePct, 10.0)
		assert.LessOrEqual(t, s.ForestCoveragePct, 25.0)
		assert.Equal(t, "medium", s.DeforestationRisk)
	}
}

func TestSatellite_LandUseSumsTo100(t *testing.T) {
	sat := seededSatellite(3)
	for _, point := range [][2]float64{{23.0, 85.0}, {20.0, 86.0}, {23.0, 78.0}, {48.0, 2.0}} {
		for i := 0; i < 20; i++ {
			s := sat.Summarize(mustRequest(t, point[0], point[1], 2))
			assert.InDelta(t, 100.0, s.LandUse.Sum(), 0.001)
			assert.GreaterOrEqual(t, s.LandUse.Other, 0.0)
		}
	}
}

func TestSatellite_CoastalWater(t *testing.T) {
	// Odisha is coastal: the water draw starts at 8, and proportional
	// scaling can shave off at most ~5%.
	sat := seededSatellite(4)
	for i := 0; i < 50; i++ {
		s := sat.Summarize(mustRequest(t, 20.0, 86.0, 2))
		assert.GreaterOrEqual(t, s.LandUse.Water, 7.5)
		assert.Contains(t, []string{"low", "moderate"}, s.WaterStress)
	}
}

func TestSatellite_BiodiversityAndCloud(t *testing.T) {
	sat := seededSatellite(5)
	for i := 0; i < 50; i++ {
		s := sat.Summarize(mustRequest(t, 23.0, 85.0, 2))
		assert.LessOrEqual(t, s.BiodiversityIndex, 100.0)
		assert.Greater(t, s.BiodiversityIndex, 0.0)
		assert.GreaterOrEqual(t, s.CloudCoverPct, 5.0)
		assert.LessOrEqual(t, s.CloudCoverPct, 25.0)
		assert.False(t, s.AcquisitionDate.IsZero())
	}
}

// Package coverage derives the normalized land-use percentage breakdown for
// an analyzed area, either from a reported satellite summary or from
// classified feature counts.
package coverage

import (
	"math"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// DefaultBreakdown is the derived-mode cold-start fallback used when no
// countable features exist at all.
var DefaultBreakdown = model.CoverageBreakdown{
	Forest:      20,
	Water:       5,
	Agriculture: 30,
	Settlement:  10,
	Other:       35,
}

// FromSatellite selects reported mode: the satellite summary's breakdown is
// used directly, as it is normalized by that source.
func FromSatellite(sat model.SatelliteAnalysis) model.CoverageBreakdown {
	return sat.LandUse
}

// FromCounts estimates the breakdown from feature counts (derived mode).
// The count base is water bodies + forests + agricultural areas +
// settlements; waterways contribute at half weight to the water share only.
// If the four estimated shares exceed 100 they are scaled down
// proportionally; the remainder becomes "other".
func FromCounts(stats model.FeatureStats) model.CoverageBreakdown {
	total := stats.WaterBodies + stats.Forests + stats.AgriculturalAreas + stats.Settlements
	if total == 0 {
		return DefaultBreakdown
	}
	t := float64(total)

	forest := float64(stats.Forests) / t * 60
	water := (float64(stats.WaterBodies) + 0.5*float64(stats.Waterways)) / t * 25
	agri := float64(stats.AgriculturalAreas) / t * 45
	settlement := float64(stats.Settlements) / t * 15

	if sum := forest + water + agri + settlement; sum > 100 {
		scale := 100 / sum
		forest *= scale
		water *= scale
		agri *= scale
		settlement *= scale
	}

	forest = round2(forest)
	water = round2(water)
	agri = round2(agri)
	settlement = round2(settlement)
	other := round2(math.Max(0, 100-forest-water-agri-settlement))

	return model.CoverageBreakdown{
		Forest:      forest,
		Water:       water,
		Agriculture: agri,
		Settlement:  settlement,
		Other:       other,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

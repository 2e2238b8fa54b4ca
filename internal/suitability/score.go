// Package suitability computes the multi-factor FRA suitability score, the
// derived tier, and the rights-eligibility flags. The scorer is a pure
// numeric function over already-validated inputs and has no failure modes.
package suitability

import (
	"math"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// Component caps and weights.
const (
	forestCap     = 40.0
	forestWeight  = 0.8
	tribalScore   = 30.0
	nonTribal     = 10.0
	livelihoodCap = 20.0
	communityCap  = 15.0
	infraCap      = 10.0
	bonusCap      = 5.0
)

// Tier thresholds, inclusive lower bounds.
const (
	thresholdVeryHigh = 85.0
	thresholdHigh     = 70.0
	thresholdMedium   = 50.0
	thresholdLow      = 30.0
)

// Score combines coverage, feature counts, and the region profile into a
// SuitabilityAssessment. The total is the uncapped sum of the seven
// components: the two bonuses can push it past 100.
func Score(cov model.CoverageBreakdown, stats model.FeatureStats, region model.RegionProfile) model.SuitabilityAssessment {
	forest := math.Min(forestCap, cov.Forest*forestWeight)

	tribal := nonTribal
	if region.Tribal {
		tribal = tribalScore
	}

	livelihood := math.Min(livelihoodCap, (cov.Agriculture+0.5*cov.Water)*0.4)
	community := math.Min(communityCap, float64(stats.Settlements)*2.5)
	infrastructure := math.Min(infraCap, float64(stats.Roads)*1.5)
	conservation := math.Min(bonusCap, float64(stats.ProtectedAreas)*2)
	cultural := math.Min(bonusCap, float64(stats.CulturalSites)*1.5)

	total := forest + tribal + livelihood + community + infrastructure + conservation + cultural

	assessment := model.SuitabilityAssessment{
		ComponentScores: map[string]float64{
			model.ScoreForestCoverage:       forest,
			model.ScoreTribalStatus:         tribal,
			model.ScoreLivelihoodPotential:  livelihood,
			model.ScoreCommunityPresence:    community,
			model.ScoreInfrastructureAccess: infrastructure,
			model.ScoreConservationValue:    conservation,
			model.ScoreCulturalSignificance: cultural,
		},
		TotalScore: total,
		Tier:       TierFor(total),

		EligibleIFR: cov.Forest > 15 && cov.Agriculture > 10,
		EligibleCFR: cov.Forest > 30 && stats.Settlements >= 2,
		EligibleCR:  region.Tribal && stats.Settlements > 1,

		Region: region,
	}
	assessment.PriorityActions = priorityActions(total, cov, region.Tribal)
	return assessment
}

// TierFor maps a total score to its suitability tier.
func TierFor(total float64) model.Tier {
	switch {
	case total >= thresholdVeryHigh:
		return model.TierVeryHigh
	case total >= thresholdHigh:
		return model.TierHigh
	case total >= thresholdMedium:
		return model.TierMedium
	case total >= thresholdLow:
		return model.TierLow
	default:
		return model.TierVeryLow
	}
}

// priorityActions builds the short ordered action list attached to the
// assessment itself.
func priorityActions(total float64, cov model.CoverageBreakdown, tribal bool) []string {
	var actions []string

	switch {
	case total >= thresholdHigh:
		actions = append(actions,
			"Immediate FRA implementation recommended",
			"Establish Forest Rights Committee",
		)
		if tribal {
			actions = append(actions, "Prioritize Community Forest Resource rights")
		}
	case total >= thresholdMedium:
		actions = append(actions,
			"FRA implementation with capacity building",
			"Community consultation and awareness",
		)
	default:
		actions = append(actions,
			"Infrastructure development needed before FRA implementation",
			"Focus on livelihood enhancement programs",
		)
	}

	if cov.Forest > 40 {
		actions = append(actions, "High conservation priority area")
	}
	if cov.Water < 5 {
		actions = append(actions, "Water resource development critical")
	}
	return actions
}

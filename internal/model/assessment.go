package model

// Tier is the ordinal suitability classification derived from the total score.
type Tier string

const (
	TierVeryLow  Tier = "very_low"
	TierLow      Tier = "low"
	TierMedium   Tier = "medium"
	TierHigh     Tier = "high"
	TierVeryHigh Tier = "very_high"
)

// Component score names as they appear in the assessment.
const (
	ScoreForestCoverage       = "forest_coverage"
	ScoreTribalStatus         = "tribal_status"
	ScoreLivelihoodPotential  = "livelihood_potential"
	ScoreCommunityPresence    = "community_presence"
	ScoreInfrastructureAccess = "infrastructure_access"
	ScoreConservationValue    = "conservation_value"
	ScoreCulturalSignificance = "cultural_significance"
)

// SuitabilityAssessment is the scored outcome of one analysis. TotalScore is
// the plain sum of the component scores and is deliberately not capped at
// 100; the conservation and cultural bonuses can push it past the nominal
// scale.
type SuitabilityAssessment struct {
	ComponentScores map[string]float64 `json:"component_scores"`
	TotalScore      float64            `json:"total_score"`
	Tier            Tier               `json:"overall_suitability"`

	EligibleIFR bool `json:"suitable_for_ifr"`
	EligibleCFR bool `json:"suitable_for_cfr"`
	EligibleCR  bool `json:"suitable_for_cr"`

	Region RegionProfile `json:"region_info"`

	// PriorityActions is the short ordered action list derived directly from
	// the score; the full recommendation set is assembled separately.
	PriorityActions []string `json:"priority_recommendations"`
}

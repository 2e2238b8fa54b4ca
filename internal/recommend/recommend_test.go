package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

func assessment(tier model.Tier, region model.RegionProfile) model.SuitabilityAssessment {
	return model.SuitabilityAssessment{
		Tier:        tier,
		Region:      region,
		EligibleIFR: true,
		EligibleCFR: true,
		EligibleCR:  true,
	}
}

func TestBuild_VeryHighTier(t *testing.T) {
	region := model.RegionProfile{
		Name: "Jharkhand", Tribal: true,
		DominantTribes: []string{"Santhal", "Munda", "Oraon"},
		ForestType:     "Tropical Dry Deciduous",
	}
	cov := model.CoverageBreakdown{Forest: 50, Water: 5, Agriculture: 25, Settlement: 10, Other: 10}
	stats := model.FeatureStats{Settlements: 4, Forests: 6, Roads: 2, AgriculturalAreas: 8}
	sat := &model.SatelliteAnalysis{ImageryAvailable: true, DeforestationRisk: "medium"}

	recs := Build(model.FeatureSet{}, stats, cov, assessment(model.TierVeryHigh, region), sat)

	// Expedite line leads, followed by the standard high-tier actions.
	require.Len(t, recs.ImmediateActions, 5)
	assert.Contains(t, recs.ImmediateActions[0], "expedite")
	assert.Contains(t, recs.ImmediateActions[1], "4 identified settlements")

	// Roads < 3 and water < 10 both trigger infrastructure entries.
	require.Len(t, recs.InfrastructureDevelopment, 2)

	// Forest > 40 yields the conservation block.
	require.Len(t, recs.ConservationPriorities, 3)
	assert.Contains(t, recs.ConservationPriorities[0], "50.0% forest coverage")
	assert.Contains(t, recs.ConservationPriorities[1], "6 forest patches")

	// Agriculture > 20, forest > 30, and tribal engagement.
	require.Len(t, recs.LivelihoodOpportunities, 7)
	assert.Contains(t, recs.LivelihoodOpportunities[6], "Santhal, Munda")
	assert.NotContains(t, recs.LivelihoodOpportunities[6], "Oraon")

	assert.Len(t, recs.CapacityBuilding, 3)

	// Satellite entries precede the fixed monitoring entries.
	require.Len(t, recs.MonitoringRequirements, 6)
	assert.Contains(t, recs.MonitoringRequirements[0], "satellite")

	// All three rights plus JFM and Green India for forest > 30.
	assert.Len(t, recs.SchemeEligibility, 5)

	// Deforestation risk and forest type notes.
	require.Len(t, recs.LocationSpecificNotes, 2)
	assert.Contains(t, recs.LocationSpecificNotes[0], "medium")
	assert.Contains(t, recs.LocationSpecificNotes[1], "Tropical Dry Deciduous")
}

func TestBuild_MediumTier(t *testing.T) {
	cov := model.CoverageBreakdown{Forest: 20, Water: 15, Agriculture: 10}
	recs := Build(model.FeatureSet{}, model.FeatureStats{Roads: 5}, cov,
		assessment(model.TierMedium, model.RegionProfile{Name: "Other Region"}), nil)

	require.Len(t, recs.ImmediateActions, 3)
	assert.Contains(t, recs.ImmediateActions[0], "feasibility study")
	assert.Empty(t, recs.InfrastructureDevelopment)
	assert.Empty(t, recs.ConservationPriorities)
	// Without satellite only the fixed monitoring entries appear.
	assert.Len(t, recs.MonitoringRequirements, 3)
}

func TestBuild_LowTierHasNoImmediateActions(t *testing.T) {
	recs := Build(model.FeatureSet{}, model.FeatureStats{}, model.CoverageBreakdown{Water: 20},
		model.SuitabilityAssessment{Tier: model.TierLow, Region: model.RegionProfile{Name: "Other Region"}}, nil)
	assert.Empty(t, recs.ImmediateActions)
	assert.Empty(t, recs.SchemeEligibility)
}

func TestBuild_SettlementNotes(t *testing.T) {
	features := model.FeatureSet{
		model.CategorySettlement: {
			{Name: "Village 1"}, {Name: "Unnamed"}, {Name: "Village 3"},
			{Name: "Village 4"}, {Name: "Village 5"}, {Name: "Village 6"},
		},
	}
	recs := Build(features, model.FeatureStats{Settlements: 6}, model.CoverageBreakdown{Water: 20},
		model.SuitabilityAssessment{Tier: model.TierLow, Region: model.RegionProfile{Name: "Other Region"}}, nil)

	require.NotEmpty(t, recs.LocationSpecificNotes)
	note := recs.LocationSpecificNotes[0]
	assert.Contains(t, note, "Village 1")
	assert.Contains(t, note, "Settlement 2") // unnamed settlements get positional names
	assert.Contains(t, note, "Village 5")
	assert.NotContains(t, note, "Village 6") // capped at five
}

func TestBuild_ProtectedAreaCoordination(t *testing.T) {
	recs := Build(model.FeatureSet{}, model.FeatureStats{ProtectedAreas: 2, Roads: 5},
		model.CoverageBreakdown{Forest: 10, Water: 20},
		model.SuitabilityAssessment{Tier: model.TierLow, Region: model.RegionProfile{Name: "Other Region"}}, nil)
	require.Len(t, recs.ConservationPriorities, 1)
	assert.Contains(t, recs.ConservationPriorities[0], "2 areas identified")
}

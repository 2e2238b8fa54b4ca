// Package recommend assembles the categorized recommendation lists from the
// scored assessment, coverage breakdown, feature counts, and region profile.
// Every category is built by an ordered list of condition rules; entries are
// appended in rule order and that order is part of the output contract.
package recommend

import (
	"fmt"
	"strings"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// Build generates the full recommendation set for one analysis. satellite may
// be nil when the satellite summary source is disabled.
func Build(
	features model.FeatureSet,
	stats model.FeatureStats,
	cov model.CoverageBreakdown,
	assessment model.SuitabilityAssessment,
	satellite *model.SatelliteAnalysis,
) model.RecommendationSet {
	var recs model.RecommendationSet
	region := assessment.Region

	// Immediate actions.
	switch assessment.Tier {
	case model.TierVeryHigh, model.TierHigh:
		if assessment.Tier == model.TierVeryHigh {
			recs.ImmediateActions = append(recs.ImmediateActions,
				"High priority area - expedite FRA recognition process with dedicated task force")
		}
		recs.ImmediateActions = append(recs.ImmediateActions,
			fmt.Sprintf("Initiate FRA implementation process in %d identified settlements", stats.Settlements),
			"Conduct community awareness programs about forest rights",
			"Begin documentation of traditional forest use patterns",
			"Establish Village Forest Rights Committees (VFRCs)",
		)
	case model.TierMedium:
		recs.ImmediateActions = append(recs.ImmediateActions,
			"Conduct detailed feasibility study for FRA implementation",
			"Strengthen community organization and awareness",
			"Address infrastructure gaps before FRA implementation",
		)
	}

	// Infrastructure development.
	if stats.Roads < 3 {
		recs.InfrastructureDevelopment = append(recs.InfrastructureDevelopment,
			"Improve road connectivity - limited transportation network detected")
	}
	if cov.Water < 10 {
		recs.InfrastructureDevelopment = append(recs.InfrastructureDevelopment,
			"Water infrastructure development critical - low water resource availability")
	}

	// Conservation priorities.
	if cov.Forest > 40 {
		recs.ConservationPriorities = append(recs.ConservationPriorities,
			fmt.Sprintf("High conservation value - %.1f%% forest coverage", cov.Forest),
			fmt.Sprintf("Develop conservation plan for %d forest patches", stats.Forests),
			"Implement community-based forest management",
		)
	}
	if stats.ProtectedAreas > 0 {
		recs.ConservationPriorities = append(recs.ConservationPriorities,
			fmt.Sprintf("Coordinate with existing protected area management (%d areas identified)", stats.ProtectedAreas))
	}

	// Livelihood opportunities.
	if cov.Agriculture > 20 {
		recs.LivelihoodOpportunities = append(recs.LivelihoodOpportunities,
			fmt.Sprintf("Agricultural enhancement in %d identified areas", stats.AgriculturalAreas),
			"Promote sustainable farming practices",
			"Explore organic certification opportunities",
		)
	}
	if cov.Forest > 30 {
		recs.LivelihoodOpportunities = append(recs.LivelihoodOpportunities,
			"Non-timber forest product (NTFP) development potential",
			"Community-based eco-tourism opportunities",
			"Sustainable forest-based enterprises",
		)
	}
	if region.Tribal && len(region.DominantTribes) > 0 {
		tribes := region.DominantTribes
		if len(tribes) > 2 {
			tribes = tribes[:2]
		}
		recs.LivelihoodOpportunities = append(recs.LivelihoodOpportunities,
			fmt.Sprintf("Engage with %s communities to understand their specific rights and needs", strings.Join(tribes, ", ")))
	}

	// Capacity building.
	recs.CapacityBuilding = append(recs.CapacityBuilding,
		"Train local facilitators on FRA processes",
		"Develop GIS and mapping skills in communities",
		"Strengthen traditional governance systems",
	)

	// Monitoring requirements.
	if satellite != nil && satellite.ImageryAvailable {
		recs.MonitoringRequirements = append(recs.MonitoringRequirements,
			"Establish satellite-based forest monitoring system",
			"Regular NDVI monitoring for vegetation health",
			"Annual land use change detection",
		)
	}
	recs.MonitoringRequirements = append(recs.MonitoringRequirements,
		"Set up community-based monitoring protocols",
		"Regular biodiversity assessments",
		"Socio-economic impact monitoring",
	)

	// Scheme eligibility.
	if assessment.EligibleIFR {
		recs.SchemeEligibility = append(recs.SchemeEligibility,
			"Eligible for Individual Forest Rights (IFR) under FRA")
	}
	if assessment.EligibleCFR {
		recs.SchemeEligibility = append(recs.SchemeEligibility,
			"Eligible for Community Forest Resource (CFR) rights")
	}
	if assessment.EligibleCR {
		recs.SchemeEligibility = append(recs.SchemeEligibility,
			"Eligible for Community Rights (CR) under FRA")
	}
	if cov.Forest > 30 {
		recs.SchemeEligibility = append(recs.SchemeEligibility,
			"Potential for Joint Forest Management (JFM) programs",
			"Eligible for Green India Mission activities",
		)
	}

	// Location-specific notes.
	if names := settlementNames(features, 5); len(names) > 0 {
		recs.LocationSpecificNotes = append(recs.LocationSpecificNotes,
			fmt.Sprintf("Key settlements for community engagement: %s", strings.Join(names, ", ")))
	}
	if satellite != nil && satellite.DeforestationRisk != "" && satellite.DeforestationRisk != "low" {
		recs.LocationSpecificNotes = append(recs.LocationSpecificNotes,
			fmt.Sprintf("Deforestation risk: %s - enhanced monitoring required", satellite.DeforestationRisk))
	}
	if region.ForestType != "" {
		recs.LocationSpecificNotes = append(recs.LocationSpecificNotes,
			fmt.Sprintf("Dominant forest type: %s", region.ForestType))
	}

	return recs
}

// settlementNames returns up to limit settlement names in encounter order.
func settlementNames(features model.FeatureSet, limit int) []string {
	settlements := features[model.CategorySettlement]
	var names []string
	for i, s := range settlements {
		name := s.Name
		if name == "" || name == "Unnamed" {
			name = fmt.Sprintf("Settlement %d", i+1)
		}
		names = append(names, name)
		if len(names) == limit {
			break
		}
	}
	return names
}

package model

// RecommendationSet holds the generated recommendations grouped into the
// eight fixed output categories. Order within each slice encodes priority
// and is part of the contract: callers may display only the first N entries
// as top priorities.
type RecommendationSet struct {
	ImmediateActions          []string `json:"immediate_actions"`
	InfrastructureDevelopment []string `json:"infrastructure_development"`
	ConservationPriorities    []string `json:"conservation_priorities"`
	LivelihoodOpportunities   []string `json:"livelihood_opportunities"`
	CapacityBuilding          []string `json:"capacity_building"`
	MonitoringRequirements    []string `json:"monitoring_requirements"`
	SchemeEligibility         []string `json:"scheme_eligibility"`
	LocationSpecificNotes     []string `json:"location_specific_notes"`
}

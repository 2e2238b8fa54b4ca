package model

// RegionProfile carries the characteristic flags and background knowledge for
// the region containing an analyzed coordinate. Profiles come from a static
// table loaded at startup and are never mutated.
type RegionProfile struct {
	Name string `json:"region_name"`

	ForestHigh   bool `json:"forest_high,omitempty"`
	ForestMedium bool `json:"forest_medium,omitempty"`
	Tribal       bool `json:"tribal,omitempty"`
	Coastal      bool `json:"coastal,omitempty"`
	Agriculture  bool `json:"agriculture,omitempty"`
	Mining       bool `json:"mining,omitempty"`
	MineralRich  bool `json:"mineral_rich,omitempty"`
	MixedTerrain bool `json:"mixed_terrain,omitempty"`

	// DominantTribes and ForestType are known for the listed Indian regions
	// and empty for the default profile.
	DominantTribes []string `json:"dominant_tribes,omitempty"`
	ForestType     string   `json:"forest_type,omitempty"`
}

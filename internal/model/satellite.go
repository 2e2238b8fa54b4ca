package model

import "time"

// SatelliteAnalysis is the land-use summary produced by the satellite
// stand-in source. Its LandUse breakdown is already normalized and, when
// present, is used directly by the coverage estimator (reported mode).
type SatelliteAnalysis struct {
	ImageryAvailable bool      `json:"imagery_available"`
	AcquisitionDate  time.Time `json:"acquisition_date"`
	CloudCoverPct    float64   `json:"cloud_cover_percent"`
	ResolutionMeters int       `json:"resolution_meters"`

	MeanNDVI          float64 `json:"mean_ndvi"`
	VegetationHealth  string  `json:"vegetation_health"`
	ForestCoveragePct float64 `json:"forest_coverage_percent"`

	LandUse CoverageBreakdown `json:"land_use_satellite"`

	DeforestationRisk string  `json:"deforestation_risk"`
	WaterStress       string  `json:"water_stress"`
	BiodiversityIndex float64 `json:"biodiversity_index"`
}

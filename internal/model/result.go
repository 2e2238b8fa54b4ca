package model

import "time"

// Result status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AnalysisResult is the full outcome of one pipeline invocation. It is
// transient: the engine never persists it, though a store collaborator may.
type AnalysisResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	Request  AnalysisRequest `json:"request"`
	Features FeatureSet      `json:"features,omitempty"`
	Stats    FeatureStats    `json:"statistics"`

	Satellite *SatelliteAnalysis `json:"satellite_analysis,omitempty"`

	Coverage        CoverageBreakdown     `json:"coverage_estimates"`
	Assessment      SuitabilityAssessment `json:"fra_analysis"`
	Recommendations RecommendationSet     `json:"recommendations"`

	// Artifacts maps artifact names (geojson, land_use_chart, shapefile) to
	// opaque path references produced by the render collaborator.
	Artifacts map[string]string `json:"artifacts,omitempty"`

	Provenance     string    `json:"data_source_provenance"`
	ElapsedSeconds float64   `json:"execution_time_seconds"`
	Timestamp      time.Time `json:"analysis_timestamp"`
}

// ErrorResult builds a structured error payload for computation failures.
func ErrorResult(req AnalysisRequest, message string) *AnalysisResult {
	return &AnalysisResult{
		Status:    StatusError,
		Message:   message,
		Request:   req,
		Timestamp: time.Now().UTC(),
	}
}

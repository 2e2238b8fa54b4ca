// Package model defines the core entities of the FRA suitability engine:
// analysis requests, geographic features, coverage breakdowns, assessments,
// and the assembled analysis result.
package model

import "fmt"

// Radius limits for a single analysis, in kilometers.
const (
	MinRadiusKM = 0.1
	MaxRadiusKM = 50.0
)

// Coordinate is a plain lat/lon pair. Coordinates are validated at request
// entry and never mutated afterwards.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AnalysisRequest describes one analysis: a center point and a radius.
type AnalysisRequest struct {
	Coordinate Coordinate `json:"coordinate"`
	RadiusKM   float64    `json:"radius_km"`
}

// ValidationError reports a request field outside its allowed range.
// Validation failures reject the request before the pipeline starts; they
// never produce an AnalysisResult.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewAnalysisRequest validates the raw inputs and constructs an immutable
// request. A zero radius selects the default of 2 km.
func NewAnalysisRequest(lat, lon, radiusKM float64) (AnalysisRequest, error) {
	if radiusKM == 0 {
		radiusKM = 2.0
	}
	if lat < -90 || lat > 90 {
		return AnalysisRequest{}, &ValidationError{Field: "latitude", Message: "must be between -90 and 90 degrees"}
	}
	if lon < -180 || lon > 180 {
		return AnalysisRequest{}, &ValidationError{Field: "longitude", Message: "must be between -180 and 180 degrees"}
	}
	if radiusKM < MinRadiusKM || radiusKM > MaxRadiusKM {
		return AnalysisRequest{}, &ValidationError{Field: "radius_km", Message: "must be between 0.1 and 50 kilometers"}
	}
	return AnalysisRequest{
		Coordinate: Coordinate{Latitude: lat, Longitude: lon},
		RadiusKM:   radiusKM,
	}, nil
}

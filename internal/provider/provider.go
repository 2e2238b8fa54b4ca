// Package provider acquires geographic feature data for an analysis request:
// a primary Overpass-backed source with a deterministic synthetic fallback,
// plus the satellite land-use summary stand-in.
package provider

import (
	"context"

	"go.uber.org/zap"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// FeatureData is the outcome of one acquisition: raw elements plus the
// provenance tag of the source that produced them.
type FeatureData struct {
	Elements   []model.RawElement
	Provenance string
}

// Source fetches raw geographic elements around a coordinate.
type Source interface {
	Fetch(ctx context.Context, req model.AnalysisRequest) (*FeatureData, error)
}

// Fallback tries the primary source once and falls back to the synthetic
// generator on any failure or empty response. Exactly one source wins per
// request; partial primary results are never blended with synthetic ones.
// With a nil primary the synthetic generator is used unconditionally.
type Fallback struct {
	primary   Source
	synthetic *Synthetic
}

// NewFallback builds the fallback combinator. primary may be nil to force
// synthetic-only operation.
func NewFallback(primary Source, synthetic *Synthetic) *Fallback {
	return &Fallback{primary: primary, synthetic: synthetic}
}

// Fetch implements Source. It never returns an error: the synthetic
// generator always produces data.
func (f *Fallback) Fetch(ctx context.Context, req model.AnalysisRequest) (*FeatureData, error) {
	if f.primary != nil {
		data, err := f.primary.Fetch(ctx, req)
		if err == nil && len(data.Elements) > 0 {
			return data, nil
		}
		zap.L().Warn("provider: primary source unavailable, using synthetic fallback",
			zap.Float64("lat", req.Coordinate.Latitude),
			zap.Float64("lon", req.Coordinate.Longitude),
			zap.Error(err),
		)
	}
	return f.synthetic.Fetch(ctx, req)
}

// Package engine orchestrates a full suitability analysis: feature
// acquisition, classification, coverage estimation, scoring, and
// recommendation assembly, with optional persistence and artifact rendering.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sahyadri-labs/fra-atlas/internal/classify"
	"github.com/sahyadri-labs/fra-atlas/internal/coverage"
	"github.com/sahyadri-labs/fra-atlas/internal/model"
	"github.com/sahyadri-labs/fra-atlas/internal/provider"
	"github.com/sahyadri-labs/fra-atlas/internal/recommend"
	"github.com/sahyadri-labs/fra-atlas/internal/region"
	"github.com/sahyadri-labs/fra-atlas/internal/store"
	"github.com/sahyadri-labs/fra-atlas/internal/suitability"
)

// SatelliteSource supplies the optional land-use summary for a request.
type SatelliteSource interface {
	Summarize(req model.AnalysisRequest) *model.SatelliteAnalysis
}

// Renderer writes artifacts for a completed result. Implemented by
// render.Renderer.
type Renderer interface {
	Render(result *model.AnalysisResult) map[string]string
}

// Engine runs analyses. Store, satellite, and renderer collaborators are
// optional; a nil value disables that concern.
type Engine struct {
	source    provider.Source
	satellite SatelliteSource
	regions   *region.Table
	store     store.Store
	renderer  Renderer

	saves sync.WaitGroup
}

// New creates an engine around a feature source and region table.
func New(source provider.Source, regions *region.Table, opts ...Option) *Engine {
	e := &Engine{source: source, regions: regions}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithSatellite enables the satellite land-use summary.
func WithSatellite(s SatelliteSource) Option {
	return func(e *Engine) { e.satellite = s }
}

// WithStore enables persistence of completed results.
func WithStore(s store.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithRenderer enables artifact rendering.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// Analyze validates the inputs and runs the full pipeline. Validation
// failures are returned as errors before any work starts; failures inside
// the pipeline produce an error-status result instead.
func (e *Engine) Analyze(ctx context.Context, lat, lon, radiusKM float64) (*model.AnalysisResult, error) {
	req, err := model.NewAnalysisRequest(lat, lon, radiusKM)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, req), nil
}

// run executes the pipeline for a validated request. It never returns an
// error: computation failures, including panics in collaborators, become
// error-status results.
func (e *Engine) run(ctx context.Context, req model.AnalysisRequest) (result *model.AnalysisResult) {
	start := time.Now()
	log := zap.L().With(
		zap.Float64("latitude", req.Coordinate.Latitude),
		zap.Float64("longitude", req.Coordinate.Longitude),
		zap.Float64("radius_km", req.RadiusKM),
	)
	log.Info("engine: starting analysis")

	defer func() {
		if r := recover(); r != nil {
			log.Error("engine: analysis panicked", zap.Any("panic", r))
			result = model.ErrorResult(req, fmt.Sprintf("internal error: %v", r))
			result.ElapsedSeconds = time.Since(start).Seconds()
		}
	}()

	data, err := e.source.Fetch(ctx, req)
	if err != nil {
		log.Error("engine: feature acquisition failed", zap.Error(err))
		result = model.ErrorResult(req, err.Error())
		result.ElapsedSeconds = time.Since(start).Seconds()
		return result
	}

	features := classify.Classify(data.Elements)
	stats := features.Stats()
	profile := e.regions.Identify(req.Coordinate)

	var satellite *model.SatelliteAnalysis
	if e.satellite != nil {
		satellite = e.satellite.Summarize(req)
	}

	var cov model.CoverageBreakdown
	if satellite != nil {
		cov = coverage.FromSatellite(*satellite)
	} else {
		cov = coverage.FromCounts(stats)
	}

	assessment := suitability.Score(cov, stats, profile)
	recommendations := recommend.Build(features, stats, cov, assessment, satellite)

	result = &model.AnalysisResult{
		Status:          model.StatusSuccess,
		Request:         req,
		Features:        features,
		Stats:           stats,
		Satellite:       satellite,
		Coverage:        cov,
		Assessment:      assessment,
		Recommendations: recommendations,
		Provenance:      data.Provenance,
		Timestamp:       time.Now().UTC(),
	}

	if e.renderer != nil {
		result.Artifacts = e.renderer.Render(result)
	}

	result.ElapsedSeconds = time.Since(start).Seconds()

	if e.store != nil {
		e.save(result)
	}

	log.Info("engine: analysis complete",
		zap.String("region", assessment.Region.Name),
		zap.Float64("total_score", assessment.TotalScore),
		zap.String("tier", string(assessment.Tier)),
		zap.String("provenance", result.Provenance),
		zap.Float64("elapsed_s", result.ElapsedSeconds),
	)
	return result
}

// save persists a result without blocking the caller. Persistence failures
// are logged and dropped; the analysis result stands on its own. In-flight
// saves are tracked so Close can drain them before the store goes away.
func (e *Engine) save(result *model.AnalysisResult) {
	e.saves.Add(1)
	go func() {
		defer e.saves.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := e.store.SaveAnalysis(ctx, result); err != nil {
			zap.L().Warn("engine: save analysis failed", zap.Error(err))
		}
	}()
}

// Close waits for in-flight saves to finish. It does not close the store;
// the store's owner closes it after Close returns.
func (e *Engine) Close() {
	e.saves.Wait()
}

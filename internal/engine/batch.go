package engine

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// MaxBatchSize bounds one batch request.
const MaxBatchSize = 10

// BatchPoint is one entry of a batch request. A zero radius selects the
// default.
type BatchPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKM  float64 `json:"radius_km,omitempty"`
}

// BatchResult holds per-point results in request order plus summary counts.
type BatchResult struct {
	Results []model.AnalysisResult `json:"results"`

	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// AnalyzeBatch runs up to MaxBatchSize analyses with bounded concurrency.
// A point that fails validation or analysis yields an error-status entry in
// its slot; it never aborts the rest of the batch. An empty or oversized
// batch is rejected before any work starts.
func (e *Engine) AnalyzeBatch(ctx context.Context, points []BatchPoint, concurrency int) (*BatchResult, error) {
	if len(points) == 0 {
		return nil, eris.New("engine: empty batch")
	}
	if len(points) > MaxBatchSize {
		return nil, eris.Errorf("engine: batch size %d exceeds maximum %d", len(points), MaxBatchSize)
	}
	if concurrency <= 0 {
		concurrency = 3
	}

	results := make([]model.AnalysisResult, len(points))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, p := range points {
		g.Go(func() error {
			req, err := model.NewAnalysisRequest(p.Latitude, p.Longitude, p.RadiusKM)
			if err != nil {
				results[i] = *model.ErrorResult(model.AnalysisRequest{
					Coordinate: model.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude},
					RadiusKM:   p.RadiusKM,
				}, err.Error())
				return nil
			}
			results[i] = *e.run(gCtx, req)
			return nil
		})
	}
	_ = g.Wait()

	batch := &BatchResult{Results: results, Total: len(results)}
	for _, r := range results {
		if r.Status == model.StatusSuccess {
			batch.Successful++
		} else {
			batch.Failed++
		}
	}
	return batch, nil
}

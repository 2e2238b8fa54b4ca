package store

import (
	"context"
	"time"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// AnalysisRecord is one persisted analysis run.
type AnalysisRecord struct {
	ID             string                `json:"id"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	RadiusKM       float64               `json:"radius_km"`
	Region         string                `json:"region"`
	Provenance     string                `json:"provenance"`
	TotalScore     float64               `json:"total_score"`
	Tier           model.Tier            `json:"tier"`
	Result         *model.AnalysisResult `json:"result,omitempty"`
	ElapsedSeconds float64               `json:"elapsed_seconds"`
	CreatedAt      time.Time             `json:"created_at"`
}

// AnalysisFilter specifies criteria for listing analyses.
type AnalysisFilter struct {
	Region string     `json:"region,omitempty"`
	Tier   model.Tier `json:"tier,omitempty"`
	Limit  int        `json:"limit,omitempty"`
	Offset int        `json:"offset,omitempty"`
}

// Store defines the persistence interface for analysis results.
type Store interface {
	SaveAnalysis(ctx context.Context, result *model.AnalysisResult) (*AnalysisRecord, error)
	GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error)
	ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]AnalysisRecord, error)

	Migrate(ctx context.Context) error
	Close() error
}

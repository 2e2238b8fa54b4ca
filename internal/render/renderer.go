package render

import (
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// Artifact names recorded on the analysis result.
const (
	ArtifactGeoJSON      = "geojson"
	ArtifactLandUseChart = "land_use_chart"
	ArtifactShapefile    = "shapefile"
)

// Renderer writes the artifact set for a result into a single directory.
type Renderer struct {
	Dir string

	// WriteShapefiles additionally exports the point shapefile; off by
	// default since most callers only consume the GeoJSON.
	WriteShapefiles bool
}

// New creates a renderer, ensuring the output directory exists.
func New(dir string, writeShapefiles bool) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "render: mkdir %s", dir)
	}
	return &Renderer{Dir: dir, WriteShapefiles: writeShapefiles}, nil
}

// Render writes all artifacts for a successful result and returns their
// paths keyed by artifact name. A failed artifact is logged and skipped;
// rendering is best effort.
func (r *Renderer) Render(result *model.AnalysisResult) map[string]string {
	name := fmt.Sprintf("analysis_%.4f_%.4f_%s",
		result.Request.Coordinate.Latitude,
		result.Request.Coordinate.Longitude,
		time.Now().UTC().Format("20060102T150405"),
	)

	artifacts := make(map[string]string)

	if path, err := WriteGeoJSON(result.Features, r.Dir, name); err != nil {
		zap.L().Warn("render: geojson failed", zap.Error(err))
	} else {
		artifacts[ArtifactGeoJSON] = path
	}

	if path, err := WriteLandUseChart(result, r.Dir, name+"_land_use"); err != nil {
		zap.L().Warn("render: land use chart failed", zap.Error(err))
	} else {
		artifacts[ArtifactLandUseChart] = path
	}

	if r.WriteShapefiles {
		if path, err := WriteShapefile(result.Features, r.Dir, name); err != nil {
			zap.L().Warn("render: shapefile failed", zap.Error(err))
		} else {
			artifacts[ArtifactShapefile] = path
		}
	}

	return artifacts
}

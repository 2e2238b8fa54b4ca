// Package render turns analysis results into artifacts: a GeoJSON feature
// collection, an HTML land-use summary, and a shapefile export of feature
// locations. Artifact paths are recorded on the result for callers.
package render

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// categoryColors mirror the map styling used in the HTML summary.
var categoryColors = map[model.Category]string{
	model.CategoryWaterBody:        "#3388ff",
	model.CategoryWaterway:         "#66aaff",
	model.CategoryForest:           "#228b22",
	model.CategoryAgriculturalArea: "#daa520",
	model.CategorySettlement:       "#cd5c5c",
	model.CategoryRoad:             "#696969",
	model.CategoryBuilding:         "#8b7765",
	model.CategoryAdminBoundary:    "#9370db",
	model.CategoryProtectedArea:    "#2e8b57",
	model.CategoryPointOfInterest:  "#ff8c00",
	model.CategoryCulturalSite:     "#b8860b",
}

// WriteGeoJSON encodes the classified features as a GeoJSON FeatureCollection
// and writes it next to the other artifacts.
func WriteGeoJSON(features model.FeatureSet, dir, name string) (string, error) {
	fc := &geojson.FeatureCollection{}
	for _, category := range model.Categories {
		for _, f := range features[category] {
			g, err := toGeometry(f)
			if err != nil {
				return "", err
			}
			fc.Features = append(fc.Features, &geojson.Feature{
				ID:       f.ID,
				Geometry: g,
				Properties: map[string]any{
					"category": string(f.Category),
					"name":     f.Name,
					"color":    categoryColors[f.Category],
				},
			})
		}
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "render: marshal feature collection")
	}

	path := filepath.Join(dir, name+".geojson")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", eris.Wrapf(err, "render: write %s", path)
	}
	return path, nil
}

// toGeometry converts a classified feature to a go-geom geometry. Points map
// to Point, open paths to LineString, and closed paths with enough vertices
// to Polygon.
func toGeometry(f model.ClassifiedFeature) (geom.T, error) {
	if len(f.Coords) == 0 {
		return nil, eris.Errorf("render: feature %s has no coordinates", f.ID)
	}

	if f.Kind == model.GeometryPoint || len(f.Coords) == 1 {
		c := f.Coords[0]
		return geom.NewPointFlat(geom.XY, []float64{c.Longitude, c.Latitude}).SetSRID(4326), nil
	}

	flat := make([]float64, 0, len(f.Coords)*2)
	for _, c := range f.Coords {
		flat = append(flat, c.Longitude, c.Latitude)
	}

	first, last := f.Coords[0], f.Coords[len(f.Coords)-1]
	closed := first == last && len(f.Coords) >= 4
	if closed {
		return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}).SetSRID(4326), nil
	}
	return geom.NewLineStringFlat(geom.XY, flat).SetSRID(4326), nil
}

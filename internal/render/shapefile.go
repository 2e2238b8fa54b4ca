package render

import (
	"path/filepath"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// WriteShapefile exports every classified feature as a point at its centroid
// with CATEGORY and NAME attributes. Point output keeps the export readable
// by any shapefile consumer regardless of the source geometry mix.
func WriteShapefile(features model.FeatureSet, dir, name string) (string, error) {
	path := filepath.Join(dir, name+".shp")
	writer, err := shp.Create(path, shp.POINT)
	if err != nil {
		return "", eris.Wrapf(err, "render: create shapefile %s", path)
	}
	defer writer.Close()

	writer.SetFields([]shp.Field{
		shp.StringField("CATEGORY", 32),
		shp.StringField("NAME", 64),
	})

	row := 0
	for _, category := range model.Categories {
		for _, f := range features[category] {
			lat, lon := centroid(f.Coords)
			writer.Write(&shp.Point{X: lon, Y: lat})
			writer.WriteAttribute(row, 0, string(f.Category))
			writer.WriteAttribute(row, 1, f.Name)
			row++
		}
	}
	return path, nil
}

func centroid(coords []model.Coordinate) (lat, lon float64) {
	if len(coords) == 0 {
		return 0, 0
	}
	for _, c := range coords {
		lat += c.Latitude
		lon += c.Longitude
	}
	n := float64(len(coords))
	return lat / n, lon / n
}

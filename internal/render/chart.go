package render

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// landUseTemplate renders the coverage breakdown as a self-contained HTML
// bar chart, one row per category.
var landUseTemplate = template.Must(template.New("land_use").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Land Use — {{.Region}}</title>
<style>
  body { font-family: sans-serif; margin: 2em; color: #222; }
  .bar { height: 28px; border-radius: 3px; margin: 4px 0; }
  .row { display: flex; align-items: center; gap: 12px; }
  .label { width: 140px; }
  .pct { width: 70px; text-align: right; font-variant-numeric: tabular-nums; }
</style>
</head>
<body>
<h2>Land Use Distribution — {{.Region}}</h2>
<p>Center: {{printf "%.4f" .Latitude}}, {{printf "%.4f" .Longitude}} · Radius: {{printf "%.1f" .RadiusKM}} km · Source: {{.Provenance}}</p>
{{range .Rows}}<div class="row">
  <span class="label">{{.Label}}</span>
  <span class="pct">{{printf "%.1f" .Percent}}%</span>
  <div class="bar" style="width: {{printf "%.1f" .Percent}}%; background: {{.Color}};"></div>
</div>
{{end}}</body>
</html>
`))

type landUseRow struct {
	Label   string
	Percent float64
	Color   string
}

type landUsePage struct {
	Region     string
	Latitude   float64
	Longitude  float64
	RadiusKM   float64
	Provenance string
	Rows       []landUseRow
}

// WriteLandUseChart writes the HTML land-use summary for a result.
func WriteLandUseChart(result *model.AnalysisResult, dir, name string) (string, error) {
	page := landUsePage{
		Region:     result.Assessment.Region.Name,
		Latitude:   result.Request.Coordinate.Latitude,
		Longitude:  result.Request.Coordinate.Longitude,
		RadiusKM:   result.Request.RadiusKM,
		Provenance: result.Provenance,
		Rows: []landUseRow{
			{Label: "Forest", Percent: result.Coverage.Forest, Color: "#228b22"},
			{Label: "Water", Percent: result.Coverage.Water, Color: "#3388ff"},
			{Label: "Agriculture", Percent: result.Coverage.Agriculture, Color: "#daa520"},
			{Label: "Settlement", Percent: result.Coverage.Settlement, Color: "#cd5c5c"},
			{Label: "Other", Percent: result.Coverage.Other, Color: "#a9a9a9"},
		},
	}
	sort.SliceStable(page.Rows, func(i, j int) bool { return page.Rows[i].Percent > page.Rows[j].Percent })

	var sb strings.Builder
	if err := landUseTemplate.Execute(&sb, page); err != nil {
		return "", eris.Wrap(err, "render: execute land use template")
	}

	path := filepath.Join(dir, name+".html")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", eris.Wrapf(err, "render: write %s", path)
	}
	return path, nil
}

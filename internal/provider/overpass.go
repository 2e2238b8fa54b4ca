package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"github.com/serjvanilla/go-overpass"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// OverpassConfig configures the primary feature service client.
type OverpassConfig struct {
	Endpoint      string `yaml:"endpoint" mapstructure:"endpoint"`
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxParallel   int    `yaml:"max_parallel" mapstructure:"max_parallel"`
	RatePerMinute int    `yaml:"rate_per_minute" mapstructure:"rate_per_minute"`
}

// Overpass fetches features from an Overpass API endpoint. Each request makes
// a single bounded call; there is no retry within a request - expiry or
// failure hands over to the synthetic fallback.
type Overpass struct {
	client  overpass.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// NewOverpass creates the primary source client. The HTTP client timeout is
// the only bound on the call (the Overpass library does not take a context).
func NewOverpass(cfg OverpassConfig) *Overpass {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	maxParallel := cfg.MaxParallel
	if maxParallel <= 0 {
		maxParallel = 2
	}
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	httpClient := &http.Client{Timeout: timeout}
	return &Overpass{
		client:  overpass.NewWithSettings(cfg.Endpoint, maxParallel, httpClient),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		timeout: timeout,
	}
}

// Fetch implements Source. An empty payload counts as unavailability so the
// caller can fall back.
func (o *Overpass) Fetch(ctx context.Context, req model.AnalysisRequest) (*FeatureData, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "overpass: rate limit wait")
	}

	query := buildQuery(req.Coordinate, req.RadiusKM, int(o.timeout.Seconds()))
	start := time.Now()
	result, err := o.client.Query(query)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: query")
	}

	elements := convertResult(&result)
	if len(elements) == 0 {
		return nil, eris.New("overpass: empty payload")
	}

	zap.L().Debug("overpass: query complete",
		zap.Int("elements", len(elements)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &FeatureData{Elements: elements, Provenance: model.ProvenancePrimary}, nil
}

// buildQuery assembles the Overpass QL query covering every tag family the
// classifier understands.
func buildQuery(coord model.Coordinate, radiusKM float64, timeoutSecs int) string {
	around := fmt.Sprintf("(around:%.0f,%.6f,%.6f)", radiusKM*1000, coord.Latitude, coord.Longitude)
	filters := []string{
		`way["natural"="water"]`,
		`way["landuse"="reservoir"]`,
		`way["waterway"]`,
		`way["natural"="forest"]`,
		`way["natural"="wood"]`,
		`way["landuse"="forest"]`,
		`way["natural"="scrub"]`,
		`way["landuse"="farmland"]`,
		`way["landuse"="orchard"]`,
		`way["landuse"="vineyard"]`,
		`way["landuse"="meadow"]`,
		`node["place"="village"]`,
		`node["place"="hamlet"]`,
		`node["place"="town"]`,
		`way["place"="village"]`,
		`way["place"="hamlet"]`,
		`way["landuse"="residential"]`,
		`way["building"]`,
		`way["highway"]`,
		`way["boundary"="administrative"]`,
		`way["leisure"="nature_reserve"]`,
		`way["boundary"="protected_area"]`,
		`node["amenity"]`,
		`way["amenity"]`,
		`node["historic"]`,
		`way["historic"]`,
	}

	q := fmt.Sprintf("[out:json][timeout:%d];\n(\n", timeoutSecs)
	for _, f := range filters {
		q += "  " + f + around + ";\n"
	}
	q += ");\nout body;\n>;\nout skel qt;"
	return q
}

// convertResult flattens the Overpass result into raw elements. Skeleton
// nodes and ways without tags are dropped; relations are not used.
func convertResult(result *overpass.Result) []model.RawElement {
	var elements []model.RawElement

	for _, node := range result.Nodes {
		if len(node.Tags) == 0 {
			continue
		}
		elements = append(elements, model.RawElement{
			ID:     fmt.Sprintf("node/%d", node.ID),
			Kind:   model.GeometryPoint,
			Coords: []model.Coordinate{{Latitude: node.Lat, Longitude: node.Lon}},
			Tags:   node.Tags,
		})
	}

	for _, way := range result.Ways {
		if len(way.Tags) == 0 || len(way.Nodes) == 0 {
			continue
		}
		coords := make([]model.Coordinate, 0, len(way.Nodes))
		for _, n := range way.Nodes {
			coords = append(coords, model.Coordinate{Latitude: n.Lat, Longitude: n.Lon})
		}
		elements = append(elements, model.RawElement{
			ID:     fmt.Sprintf("way/%d", way.ID),
			Kind:   model.GeometryPath,
			Coords: coords,
			Tags:   way.Tags,
		})
	}

	return elements
}

package provider

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
	"github.com/sahyadri-labs/fra-atlas/internal/region"
)

// Synthetic generates a plausible feature set when the primary source is
// unavailable. Category counts and geometric sizes are parameterized by the
// region profile of the requested coordinate. The random source is injected
// so tests can fix the seed; NewSynthetic seeds from the clock.
type Synthetic struct {
	regions *region.Table

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthetic creates a generator with a time-seeded random source.
func NewSynthetic(regions *region.Table) *Synthetic {
	now := time.Now()
	return NewSyntheticWithRand(regions, rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix()))))
}

// NewSyntheticWithRand creates a generator with an explicit random source.
func NewSyntheticWithRand(regions *region.Table, rng *rand.Rand) *Synthetic {
	return &Synthetic{regions: regions, rng: rng}
}

// Fetch implements Source. It cannot fail.
func (s *Synthetic) Fetch(_ context.Context, req model.AnalysisRequest) (*FeatureData, error) {
	profile := s.regions.Identify(req.Coordinate)

	s.mu.Lock()
	elements := s.generate(req.Coordinate, req.RadiusKM, profile)
	s.mu.Unlock()

	return &FeatureData{Elements: elements, Provenance: model.ProvenanceSynthetic}, nil
}

func (s *Synthetic) generate(center model.Coordinate, radiusKM float64, profile model.RegionProfile) []model.RawElement {
	radiusDeg := radiusKM / 111.0
	var elements []model.RawElement

	// Water: one main body plus streams, more of both in coastal regions.
	waterCount := 3
	if profile.Coastal {
		waterCount = 4
	}
	for i := 0; i < waterCount; i++ {
		lat := center.Latitude + s.uniform(radiusDeg)
		lon := center.Longitude + s.uniform(radiusDeg)
		if i == 0 {
			elements = append(elements, model.RawElement{
				ID:     fmt.Sprintf("water_%d", i),
				Kind:   model.GeometryPath,
				Coords: octagon(lat, lon, 0.002),
				Tags:   map[string]string{"name": fmt.Sprintf("Water Body %d", i+1), "natural": "water"},
			})
			continue
		}
		elements = append(elements, model.RawElement{
			ID:     fmt.Sprintf("stream_%d", i),
			Kind:   model.GeometryPath,
			Coords: stream(lat, lon, radiusDeg*0.4),
			Tags:   map[string]string{"name": fmt.Sprintf("Stream %d", i), "waterway": "stream"},
		})
	}

	// Forests: denser and larger where the region is forest-rich.
	forestCount, forestSize := 3, 0.003
	if profile.ForestHigh {
		forestCount, forestSize = 6, 0.006
	}
	for i := 0; i < forestCount; i++ {
		lat := center.Latitude + s.uniform(radiusDeg)
		lon := center.Longitude + s.uniform(radiusDeg)
		elements = append(elements, model.RawElement{
			ID:     fmt.Sprintf("forest_%d", i),
			Kind:   model.GeometryPath,
			Coords: octagon(lat, lon, forestSize),
			Tags:   map[string]string{"name": fmt.Sprintf("Forest Area %d", i+1), "natural": "forest"},
		})
	}

	// Settlements: tribal regions have fewer, smaller villages.
	settlementCount, settlementType := 6, "village"
	if profile.Tribal {
		settlementCount, settlementType = 4, "tribal_village"
	}
	for i := 0; i < settlementCount; i++ {
		lat := center.Latitude + s.uniform(radiusDeg*0.8)
		lon := center.Longitude + s.uniform(radiusDeg*0.8)
		elements = append(elements, model.RawElement{
			ID:     fmt.Sprintf("settlement_%d", i),
			Kind:   model.GeometryPath,
			Coords: octagon(lat, lon, 0.001),
			Tags: map[string]string{
				"name":            fmt.Sprintf("Village %d", i+1),
				"place":           "village",
				"settlement_type": settlementType,
			},
		})
	}

	// Agriculture.
	agriCount := 4
	if profile.Agriculture {
		agriCount = 8
	}
	for i := 0; i < agriCount; i++ {
		lat := center.Latitude + s.uniform(radiusDeg)
		lon := center.Longitude + s.uniform(radiusDeg)
		elements = append(elements, model.RawElement{
			ID:     fmt.Sprintf("farm_%d", i),
			Kind:   model.GeometryPath,
			Coords: octagon(lat, lon, 0.003),
			Tags:   map[string]string{"name": fmt.Sprintf("Agricultural Area %d", i+1), "landuse": "farmland"},
		})
	}

	// Road network: north-south, east-west, diagonal, and a curved link.
	roadTypes := []string{"primary", "secondary", "tertiary", "track"}
	for i := 0; i < len(roadTypes); i++ {
		elements = append(elements, model.RawElement{
			ID:     fmt.Sprintf("road_%d", i),
			Kind:   model.GeometryPath,
			Coords: road(center, radiusDeg, i),
			Tags:   map[string]string{"highway": roadTypes[i]},
		})
	}

	return elements
}

// uniform draws from [-spread, spread).
func (s *Synthetic) uniform(spread float64) float64 {
	return (s.rng.Float64()*2 - 1) * spread
}

// octagon builds a closed regular octagon around a center. Longitude steps
// are stretched by the latitude cosine so shapes stay roughly regular away
// from the equator.
func octagon(centerLat, centerLon, size float64) []model.Coordinate {
	coords := make([]model.Coordinate, 0, 9)
	for i := 0; i < 8; i++ {
		angle := float64(i) * 2 * math.Pi / 8
		coords = append(coords, model.Coordinate{
			Latitude:  centerLat + size*math.Cos(angle),
			Longitude: centerLon + size*math.Sin(angle)/math.Cos(centerLat*math.Pi/180),
		})
	}
	return append(coords, coords[0])
}

// stream builds a piecewise path with a sinusoidal lateral offset so
// synthetic waterways do not come out perfectly straight.
func stream(startLat, startLon, length float64) []model.Coordinate {
	const segments = 10
	heading := math.Pi / 4
	coords := make([]model.Coordinate, 0, segments+1)
	for i := 0; i <= segments; i++ {
		progress := float64(i) / segments
		meander := 0.3 * math.Sin(progress*math.Pi*4) * length
		coords = append(coords, model.Coordinate{
			Latitude:  startLat + progress*length*math.Cos(heading) + meander*math.Cos(heading+math.Pi/2),
			Longitude: startLon + progress*length*math.Sin(heading) + meander*math.Sin(heading+math.Pi/2),
		})
	}
	return coords
}

// road lays out one of four fixed road shapes indexed by i.
func road(center model.Coordinate, radiusDeg float64, index int) []model.Coordinate {
	const points = 10
	coords := make([]model.Coordinate, 0, points)
	switch index {
	case 0: // north-south
		for i := 0; i < points; i++ {
			progress := float64(i) / (points - 1)
			coords = append(coords, model.Coordinate{
				Latitude:  center.Latitude + (progress-0.5)*radiusDeg*1.6,
				Longitude: center.Longitude,
			})
		}
	case 1: // east-west
		for i := 0; i < points; i++ {
			progress := float64(i) / (points - 1)
			coords = append(coords, model.Coordinate{
				Latitude:  center.Latitude,
				Longitude: center.Longitude + (progress-0.5)*radiusDeg*1.6,
			})
		}
	case 2: // diagonal
		for i := 0; i < points; i++ {
			progress := float64(i) / (points - 1)
			coords = append(coords, model.Coordinate{
				Latitude:  center.Latitude + (progress-0.5)*radiusDeg*1.2,
				Longitude: center.Longitude + (progress-0.5)*radiusDeg*1.2,
			})
		}
	default: // curved connector
		for i := 0; i < 8; i++ {
			angle := float64(i) * math.Pi / 7
			coords = append(coords, model.Coordinate{
				Latitude:  center.Latitude + radiusDeg*0.6*math.Sin(angle),
				Longitude: center.Longitude + radiusDeg*0.6*math.Cos(angle),
			})
		}
	}
	return coords
}

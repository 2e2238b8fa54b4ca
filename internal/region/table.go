// Package region maps coordinates to named regions via a fixed, ordered
// bounding-box table. Lookup is first-match: overlapping boxes resolve purely
// by table order.
package region

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

// Box is one entry of the lookup table: a bounding box plus the profile
// returned for coordinates inside it.
type Box struct {
	Key     string  `yaml:"key"`
	MinLat  float64 `yaml:"min_lat"`
	MaxLat  float64 `yaml:"max_lat"`
	MinLon  float64 `yaml:"min_lon"`
	MaxLon  float64 `yaml:"max_lon"`
	Profile Profile `yaml:"profile"`
}

// Profile mirrors model.RegionProfile for YAML loading, minus the display
// name which is derived from the key.
type Profile struct {
	ForestHigh     bool     `yaml:"forest_high"`
	ForestMedium   bool     `yaml:"forest_medium"`
	Tribal         bool     `yaml:"tribal"`
	Coastal        bool     `yaml:"coastal"`
	Agriculture    bool     `yaml:"agriculture"`
	Mining         bool     `yaml:"mining"`
	MineralRich    bool     `yaml:"mineral_rich"`
	DominantTribes []string `yaml:"dominant_tribes"`
	ForestType     string   `yaml:"forest_type"`
}

// Table is an immutable ordered region table. Construct once at startup and
// share by reference; concurrent reads are safe.
type Table struct {
	boxes []Box
}

// defaultBoxes covers the Indian states the original survey data was
// gathered for. The Chhattisgarh and Madhya Pradesh boxes overlap; the
// ordering here is deliberate and load-bearing.
var defaultBoxes = []Box{
	{
		Key: "jharkhand", MinLat: 21.5, MaxLat: 25, MinLon: 83, MaxLon: 88,
		Profile: Profile{
			ForestHigh: true, Tribal: true, MineralRich: true,
			DominantTribes: []string{"Santhal", "Munda", "Oraon"},
			ForestType:     "Tropical Dry Deciduous",
		},
	},
	{
		Key: "chhattisgarh", MinLat: 17.5, MaxLat: 24.5, MinLon: 80, MaxLon: 85,
		Profile: Profile{
			ForestHigh: true, Tribal: true, Mining: true,
			DominantTribes: []string{"Gond", "Kamar", "Baiga"},
			ForestType:     "Tropical Moist Deciduous",
		},
	},
	{
		Key: "odisha", MinLat: 17.5, MaxLat: 22.5, MinLon: 81.5, MaxLon: 87.5,
		Profile: Profile{
			ForestMedium: true, Tribal: true, Coastal: true,
			DominantTribes: []string{"Santhal", "Kondh", "Saora"},
			ForestType:     "Tropical Semi-Evergreen",
		},
	},
	{
		Key: "madhya_pradesh", MinLat: 21.1, MaxLat: 26.9, MinLon: 74.0, MaxLon: 82.8,
		Profile: Profile{
			ForestHigh: true, Tribal: true, Agriculture: true,
			DominantTribes: []string{"Gond", "Bhil", "Korku"},
			ForestType:     "Tropical Dry Deciduous",
		},
	},
}

// DefaultTable returns the built-in region table.
func DefaultTable() *Table {
	return &Table{boxes: defaultBoxes}
}

// LoadTable reads a region table override from a YAML file. The file holds a
// list of Box entries in lookup order.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "region: read table %s", path)
	}
	var boxes []Box
	if err := yaml.Unmarshal(data, &boxes); err != nil {
		return nil, eris.Wrapf(err, "region: parse table %s", path)
	}
	if len(boxes) == 0 {
		return nil, eris.Errorf("region: table %s is empty", path)
	}
	return &Table{boxes: boxes}, nil
}

// Boxes returns the table entries in lookup order.
func (t *Table) Boxes() []Box {
	return t.boxes
}

var titleCaser = cases.Title(language.English)

// displayName turns a table key like "madhya_pradesh" into "Madhya Pradesh".
func displayName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// Identify returns the profile of the first box containing the coordinate,
// or the default mixed-terrain profile when none matches.
func (t *Table) Identify(coord model.Coordinate) model.RegionProfile {
	for _, b := range t.boxes {
		if coord.Latitude >= b.MinLat && coord.Latitude <= b.MaxLat &&
			coord.Longitude >= b.MinLon && coord.Longitude <= b.MaxLon {
			return model.RegionProfile{
				Name:           displayName(b.Key),
				ForestHigh:     b.Profile.ForestHigh,
				ForestMedium:   b.Profile.ForestMedium,
				Tribal:         b.Profile.Tribal,
				Coastal:        b.Profile.Coastal,
				Agriculture:    b.Profile.Agriculture,
				Mining:         b.Profile.Mining,
				MineralRich:    b.Profile.MineralRich,
				DominantTribes: b.Profile.DominantTribes,
				ForestType:     b.Profile.ForestType,
			}
		}
	}
	return model.RegionProfile{Name: "Other Region", MixedTerrain: true}
}

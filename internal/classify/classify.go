// Package classify buckets raw geographic elements into the fixed feature
// taxonomy. Rules are an explicit ordered list evaluated first-match-wins;
// the ordering is a contract, not an accident of control flow.
package classify

import "github.com/sahyadri-labs/fra-atlas/internal/model"

// rule pairs a tag predicate with the category assigned on match.
type rule struct {
	category model.Category
	match    func(tags map[string]string) bool
}

func tagIn(tags map[string]string, key string, values ...string) bool {
	v, ok := tags[key]
	if !ok {
		return false
	}
	for _, want := range values {
		if v == want {
			return true
		}
	}
	return false
}

func tagPresent(tags map[string]string, key string) bool {
	_, ok := tags[key]
	return ok
}

// rules is evaluated top to bottom; an element lands in the first category
// whose predicate matches. Elements matching no rule are dropped.
var rules = []rule{
	{model.CategoryWaterBody, func(t map[string]string) bool {
		return tagIn(t, "natural", "water") || tagIn(t, "landuse", "reservoir")
	}},
	{model.CategoryWaterway, func(t map[string]string) bool {
		return tagIn(t, "waterway", "river", "stream", "brook", "creek")
	}},
	{model.CategoryForest, func(t map[string]string) bool {
		return tagIn(t, "natural", "forest", "wood", "scrub") || tagIn(t, "landuse", "forest")
	}},
	{model.CategoryAgriculturalArea, func(t map[string]string) bool {
		return tagIn(t, "landuse", "farmland", "orchard", "vineyard", "meadow")
	}},
	{model.CategorySettlement, func(t map[string]string) bool {
		return tagIn(t, "place", "village", "hamlet", "town") || tagIn(t, "landuse", "residential")
	}},
	{model.CategoryRoad, func(t map[string]string) bool {
		return tagPresent(t, "highway")
	}},
	{model.CategoryBuilding, func(t map[string]string) bool {
		return tagPresent(t, "building")
	}},
	{model.CategoryAdminBoundary, func(t map[string]string) bool {
		return tagPresent(t, "admin_level")
	}},
	{model.CategoryProtectedArea, func(t map[string]string) bool {
		return tagIn(t, "leisure", "nature_reserve") || tagIn(t, "boundary", "protected_area")
	}},
	{model.CategoryPointOfInterest, func(t map[string]string) bool {
		return tagPresent(t, "amenity")
	}},
	{model.CategoryCulturalSite, func(t map[string]string) bool {
		return tagPresent(t, "historic")
	}},
}

// Classify assigns each element to the first matching category. Elements
// without coordinates or without a matching rule are skipped.
func Classify(elements []model.RawElement) model.FeatureSet {
	set := make(model.FeatureSet, len(model.Categories))
	for _, el := range elements {
		if len(el.Coords) == 0 {
			continue
		}
		for _, r := range rules {
			if !r.match(el.Tags) {
				continue
			}
			name := el.Tags["name"]
			if name == "" {
				name = "Unnamed"
			}
			set[r.category] = append(set[r.category], model.ClassifiedFeature{
				ID:       el.ID,
				Category: r.category,
				Name:     name,
				Kind:     el.Kind,
				Coords:   el.Coords,
				Tags:     el.Tags,
			})
			break
		}
	}
	return set
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyadri-labs/fra-atlas/internal/model"
)

func element(id string, tags map[string]string) model.RawElement {
	return model.RawElement{
		ID:     id,
		Kind:   model.GeometryPath,
		Coords: []model.Coordinate{{Latitude: 23, Longitude: 85}},
		Tags:   tags,
	}
}

func TestClassify_Categories(t *testing.T) {
	for _, tc := range []struct {
		name string
		tags map[string]string
		want model.Category
	}{
		{"natural water", map[string]string{"natural": "water"}, model.CategoryWaterBody},
		{"reservoir", map[string]string{"landuse": "reservoir"}, model.CategoryWaterBody},
		{"stream", map[string]string{"waterway": "stream"}, model.CategoryWaterway},
		{"river", map[string]string{"waterway": "river"}, model.CategoryWaterway},
		{"natural forest", map[string]string{"natural": "forest"}, model.CategoryForest},
		{"wood", map[string]string{"natural": "wood"}, model.CategoryForest},
		{"landuse forest", map[string]string{"landuse": "forest"}, model.CategoryForest},
		{"farmland", map[string]string{"landuse": "farmland"}, model.CategoryAgriculturalArea},
		{"orchard", map[string]string{"landuse": "orchard"}, model.CategoryAgriculturalArea},
		{"village", map[string]string{"place": "village"}, model.CategorySettlement},
		{"residential", map[string]string{"landuse": "residential"}, model.CategorySettlement},
		{"highway", map[string]string{"highway": "track"}, model.CategoryRoad},
		{"building", map[string]string{"building": "yes"}, model.CategoryBuilding},
		{"admin boundary", map[string]string{"admin_level": "6"}, model.CategoryAdminBoundary},
		{"nature reserve", map[string]string{"leisure": "nature_reserve"}, model.CategoryProtectedArea},
		{"protected area", map[string]string{"boundary": "protected_area"}, model.CategoryProtectedArea},
		{"amenity", map[string]string{"amenity": "school"}, model.CategoryPointOfInterest},
		{"historic", map[string]string{"historic": "ruins"}, model.CategoryCulturalSite},
	} {
		t.Run(tc.name, func(t *testing.T) {
			set := Classify([]model.RawElement{element("e1", tc.tags)})
			require.Equal(t, 1, set.Total())
			assert.Len(t, set[tc.want], 1)
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Water beats waterway when both tags are present.
	set := Classify([]model.RawElement{
		element("w", map[string]string{"natural": "water", "waterway": "stream"}),
	})
	assert.Len(t, set[model.CategoryWaterBody], 1)
	assert.Empty(t, set[model.CategoryWaterway])

	// A road with a building tag classifies as road.
	set = Classify([]model.RawElement{
		element("r", map[string]string{"highway": "primary", "building": "yes"}),
	})
	assert.Len(t, set[model.CategoryRoad], 1)
	assert.Empty(t, set[model.CategoryBuilding])

	// Settlement beats amenity.
	set = Classify([]model.RawElement{
		element("s", map[string]string{"place": "village", "amenity": "school"}),
	})
	assert.Len(t, set[model.CategorySettlement], 1)
	assert.Empty(t, set[model.CategoryPointOfInterest])
}

func TestClassify_DropsUnmatched(t *testing.T) {
	set := Classify([]model.RawElement{
		element("x", map[string]string{"barrier": "fence"}),
		element("y", nil),
	})
	assert.Equal(t, 0, set.Total())
}

func TestClassify_SkipsElementsWithoutCoordinates(t *testing.T) {
	set := Classify([]model.RawElement{
		{ID: "no-coords", Kind: model.GeometryPath, Tags: map[string]string{"natural": "water"}},
	})
	assert.Equal(t, 0, set.Total())
}

func TestClassify_NameDefaults(t *testing.T) {
	set := Classify([]model.RawElement{
		element("named", map[string]string{"natural": "forest", "name": "Saranda"}),
		element("anon", map[string]string{"natural": "forest"}),
	})
	require.Len(t, set[model.CategoryForest], 2)
	assert.Equal(t, "Saranda", set[model.CategoryForest][0].Name)
	assert.Equal(t, "Unnamed", set[model.CategoryForest][1].Name)
}

func TestClassify_PreservesEncounterOrder(t *testing.T) {
	set := Classify([]model.RawElement{
		element("a", map[string]string{"place": "village", "name": "First"}),
		element("b", map[string]string{"place": "hamlet", "name": "Second"}),
	})
	require.Len(t, set[model.CategorySettlement], 2)
	assert.Equal(t, "First", set[model.CategorySettlement][0].Name)
	assert.Equal(t, "Second", set[model.CategorySettlement][1].Name)
}

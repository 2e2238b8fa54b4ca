package model

// GeometryKind distinguishes point features from path (way) features.
type GeometryKind string

const (
	GeometryPoint GeometryKind = "point"
	GeometryPath  GeometryKind = "path"
)

// Data provenance for a feature set. Exactly one provenance wins per request:
// partial primary results are never blended with synthetic ones.
const (
	ProvenancePrimary   = "primary"
	ProvenanceSynthetic = "synthetic"
)

// RawElement is an uncategorized geographic element as returned by the
// feature service or the synthetic generator.
type RawElement struct {
	ID     string            `json:"id"`
	Kind   GeometryKind      `json:"geometry_kind"`
	Coords []Coordinate      `json:"coordinates"`
	Tags   map[string]string `json:"tags"`
}

// Category is one of the fixed feature taxonomy buckets.
type Category string

const (
	CategoryWaterBody        Category = "water_body"
	CategoryWaterway         Category = "waterway"
	CategoryForest           Category = "forest"
	CategoryAgriculturalArea Category = "agricultural_area"
	CategorySettlement       Category = "settlement"
	CategoryRoad             Category = "road"
	CategoryBuilding         Category = "building"
	CategoryAdminBoundary    Category = "administrative_boundary"
	CategoryProtectedArea    Category = "protected_area"
	CategoryPointOfInterest  Category = "point_of_interest"
	CategoryCulturalSite     Category = "cultural_site"
)

// Categories lists the full taxonomy in its canonical order.
var Categories = []Category{
	CategoryWaterBody,
	CategoryWaterway,
	CategoryForest,
	CategoryAgriculturalArea,
	CategorySettlement,
	CategoryRoad,
	CategoryBuilding,
	CategoryAdminBoundary,
	CategoryProtectedArea,
	CategoryPointOfInterest,
	CategoryCulturalSite,
}

// ClassifiedFeature is a raw element that matched a classification rule.
type ClassifiedFeature struct {
	ID       string            `json:"id"`
	Category Category          `json:"category"`
	Name     string            `json:"name"`
	Kind     GeometryKind      `json:"geometry_kind"`
	Coords   []Coordinate      `json:"coordinates"`
	Tags     map[string]string `json:"tags"`
}

// FeatureSet groups classified features by category. Slice order within a
// category is encounter order.
type FeatureSet map[Category][]ClassifiedFeature

// Count returns the number of features in a category.
func (fs FeatureSet) Count(cat Category) int {
	return len(fs[cat])
}

// Total returns the number of features across all categories.
func (fs FeatureSet) Total() int {
	n := 0
	for _, features := range fs {
		n += len(features)
	}
	return n
}

// FeatureStats summarizes per-category counts for the analysis result.
type FeatureStats struct {
	WaterBodies       int `json:"total_water_bodies"`
	Waterways         int `json:"total_waterways"`
	Forests           int `json:"total_forest_areas"`
	AgriculturalAreas int `json:"total_agricultural_areas"`
	Settlements       int `json:"total_settlements"`
	Roads             int `json:"total_roads"`
	Buildings         int `json:"total_buildings"`
	ProtectedAreas    int `json:"total_protected_areas"`
	CulturalSites     int `json:"total_cultural_sites"`
	PointsOfInterest  int `json:"total_points_of_interest"`
	AdminBoundaries   int `json:"total_admin_boundaries"`
}

// Stats derives the per-category summary from the set.
func (fs FeatureSet) Stats() FeatureStats {
	return FeatureStats{
		WaterBodies:       fs.Count(CategoryWaterBody),
		Waterways:         fs.Count(CategoryWaterway),
		Forests:           fs.Count(CategoryForest),
		AgriculturalAreas: fs.Count(CategoryAgriculturalArea),
		Settlements:       fs.Count(CategorySettlement),
		Roads:             fs.Count(CategoryRoad),
		Buildings:         fs.Count(CategoryBuilding),
		ProtectedAreas:    fs.Count(CategoryProtectedArea),
		CulturalSites:     fs.Count(CategoryCulturalSite),
		PointsOfInterest:  fs.Count(CategoryPointOfInterest),
		AdminBoundaries:   fs.Count(CategoryAdminBoundary),
	}
}

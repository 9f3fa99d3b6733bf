package api

import (
	"strconv"

	"github.com/cafescout/api-cafes/pkg/types"
)

// GeoJSON representations of search results, for map frontends that
// prefer to hand an entire layer to the map library instead of
// iterating over the cafe list themselves.

type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

type GeoJSONFeature struct {
	ID         string         `json:"id,omitempty"`
	Type       string         `json:"type"`
	Geometry   GeoJSONPoint   `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// GeoJSONPoint positions a feature. Coordinates are ordered longitude
// first, as RFC 7946 requires.
type GeoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

func NewFeatureCollectionFromCafes(cafes []types.Cafe) *GeoJSONFeatureCollection {
	fc := &GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, len(cafes)),
	}

	for _, c := range cafes {
		fc.Features = append(fc.Features, convertCafe(c))
	}

	return fc
}

func convertCafe(c types.Cafe) GeoJSONFeature {
	feature := GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONPoint{
			Type:        "Point",
			Coordinates: [2]float64{c.Lon, c.Lat},
		},
		Properties: map[string]any{
			"name":   c.Name,
			"source": c.Source,
		},
	}

	if c.OSMType != "" && c.OSMID != 0 {
		feature.ID = c.OSMType + "/" + strconv.FormatInt(c.OSMID, 10)
		feature.Properties["osm_id"] = c.OSMID
		feature.Properties["osm_type"] = c.OSMType
	}

	if c.Address != "" {
		feature.Properties["address"] = c.Address
	}

	return feature
}

package cafesearch

import (
	"strings"

	"github.com/cafescout/api-cafes/internal/pkg/infrastructure/overpass"
	"github.com/cafescout/api-cafes/pkg/types"
	"github.com/samber/lo"
)

const fallbackName = "Unnamed Cafe"

type elementKey struct {
	osmType string
	osmID   int64
}

// parseElements converts raw Overpass elements into cafe records,
// dropping closed POIs, duplicates and anything without a usable
// position. Input order is preserved for the elements that remain.
func parseElements(elements []overpass.Element) []types.Cafe {
	cafes := make([]types.Cafe, 0, len(elements))
	seen := map[elementKey]struct{}{}

	for _, e := range elements {
		if !IsOpenPOI(e.Tags) {
			continue
		}

		if e.Type != "" && e.ID != 0 {
			key := elementKey{osmType: e.Type, osmID: e.ID}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}

		lat, lon, ok := resolvePosition(e)
		if !ok {
			continue
		}

		cafes = append(cafes, types.Cafe{
			Name:    displayName(e.Tags),
			Lat:     lat,
			Lon:     lon,
			Address: formatAddress(e.Tags),
			Source:  "osm",
			OSMID:   e.ID,
			OSMType: e.Type,
		})
	}

	return cafes
}

// resolvePosition prefers the direct coordinates that nodes carry and
// falls back to the computed center that ways and relations get from
// "out center".
func resolvePosition(e overpass.Element) (float64, float64, bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}

	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}

	return 0, 0, false
}

func displayName(tags map[string]string) string {
	if tags["name"] != "" {
		return tags["name"]
	}

	if tags["brand"] != "" {
		return tags["brand"]
	}

	return fallbackName
}

func formatAddress(tags map[string]string) string {
	parts := lo.Compact([]string{
		tags["addr:housenumber"],
		tags["addr:street"],
		tags["addr:city"],
		tags["addr:postcode"],
	})

	return strings.Join(parts, ", ")
}

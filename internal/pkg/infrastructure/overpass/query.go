package overpass

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const defaultQueryTimeout = 60 // seconds

// Filter clauses appended to the union result. These exclude the bulk
// of lifecycle tagged POIs on the server side, anything that still
// slips through is caught again when the response is parsed.
var lifecycleExclusions = []string{
	`["disused:amenity" !~ "."]`,
	`["abandoned:amenity" !~ "."]`,
	`["was:amenity" !~ "."]`,
	`["end_date" !~ "."]`,
	`["disused" != "yes"]`,
	`["abandoned" != "yes"]`,
	`["closed" != "yes"]`,
	`["name" !~ "(?i)closed"]`,
}

// BuildQuery constructs an Overpass QL query selecting all nodes, ways
// and relations that match any of the tag selectors within radius
// meters of the given position. Center coordinates and tags are
// requested in the output so that ways and relations can be positioned
// just like nodes.
func BuildQuery(lat, lon float64, radius int, timeout time.Duration, targets ...TagSelector) string {
	seconds := int(timeout.Seconds())
	if seconds <= 0 {
		seconds = defaultQueryTimeout
	}

	around := fmt.Sprintf("(around:%d,%s,%s)", radius, formatDegrees(lat), formatDegrees(lon))

	var query strings.Builder

	fmt.Fprintf(&query, "[out:json][timeout:%d];\n(\n", seconds)

	for i, target := range targets {
		if i > 0 {
			query.WriteString("\n")
		}

		for _, kind := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&query, "  %s[%q=%q]%s;\n", kind, target.Key, target.Value, around)
		}
	}

	query.WriteString(")\n")

	for _, exclusion := range lifecycleExclusions {
		query.WriteString(exclusion + "\n")
	}

	query.WriteString("-> .results;\n(.results;);\nout center tags;\n")

	return query.String()
}

func formatDegrees(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

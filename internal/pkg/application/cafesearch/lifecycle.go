package cafesearch

import (
	"regexp"
	"strings"
)

// OSM lifecycle tagging comes in several flavours. Prefixed keys such as
// disused:amenity=cafe replace the active tag, flag tags such as
// disused=yes sit next to it, and end_date marks when a POI stopped
// operating. On top of that, mappers sometimes just write "closed" into
// the name instead of retagging.
var (
	lifecyclePrefixes = []string{"disused:", "abandoned:", "was:"}
	lifecycleFlags    = []string{"disused", "abandoned", "closed"}
	closedNamePattern = regexp.MustCompile(`(?i)\bclosed\b`)
)

// IsOpenPOI reports whether a set of OSM tags describes a currently
// operating point of interest. A POI without any tags at all counts as
// open, since sparse OSM data is far more often incomplete than closed.
func IsOpenPOI(tags map[string]string) bool {
	if len(tags) == 0 {
		return true
	}

	for key := range tags {
		lowered := strings.ToLower(key)
		for _, prefix := range lifecyclePrefixes {
			if strings.HasPrefix(lowered, prefix) {
				return false
			}
		}
	}

	for _, flag := range lifecycleFlags {
		if tags[flag] == "yes" {
			return false
		}
	}

	if tags["end_date"] != "" {
		return false
	}

	name := tags["name"]
	if name == "" {
		name = tags["brand"]
	}

	return !closedNamePattern.MatchString(name)
}

package overpass

// Element is a single record from the top level elements array of an
// Overpass API response. Nodes carry their position directly, ways and
// relations get a computed center when the query asks for one. A nil
// coordinate means the element did not carry one, as opposed to 0.0.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TagSelector selects elements carrying an exact key=value tag pair,
// for instance amenity=cafe.
type TagSelector struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type queryResponse struct {
	Elements []Element `json:"elements"`
}

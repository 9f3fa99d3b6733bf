package types

type Cafe struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address,omitempty"`
	Source  string  `json:"source"`
	OSMID   int64   `json:"osm_id,omitempty"`
	OSMType string  `json:"osm_type,omitempty"`
}

// SearchResult is the response envelope for a cafe search. Message is
// only set when the search came back empty.
type SearchResult struct {
	Cafes   []Cafe `json:"cafes"`
	Count   int    `json:"count"`
	Radius  int    `json:"radius"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

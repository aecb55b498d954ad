package domain

// SearchDoc is one hit returned by the search service. Identifiers are
// strings on the wire even though the activities service uses numeric ids.
type SearchDoc struct {
	ID         string   `json:"id"`
	ActivityID string   `json:"activity_id"`
	SessionID  string   `json:"session_id"`
	Name       string   `json:"name"`
	Sport      string   `json:"sport"`
	Site       string   `json:"site"`
	Instructor string   `json:"instructor"`
	StartDt    string   `json:"start_dt"`
	EndDt      string   `json:"end_dt"`
	Difficulty int      `json:"difficulty"`
	Price      float64  `json:"price"`
	Tags       []string `json:"tags"`
	UpdatedDt  string   `json:"updated_dt"`
}

// SearchResult is the paged response of a search query. It is derived per
// query and never persisted.
type SearchResult struct {
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Docs  []SearchDoc `json:"docs"`
}

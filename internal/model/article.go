package model

// Article is the API-facing article shape. Published is RFC3339 or empty
// when the provider gave no usable date.
type Article struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Publisher string `json:"publisher,omitempty"`
	Published string `json:"published,omitempty"`
	Source    string `json:"source"`
}

// StockSummary is the full result for one ticker: the generated narrative
// plus every unique article that fed the display list. This is also the
// unit stored in the result cache.
type StockSummary struct {
	Ticker   string    `json:"ticker"`
	Summary  string    `json:"summary"`
	Articles []Article `json:"articles"`
}

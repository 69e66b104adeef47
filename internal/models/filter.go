package models

// Price bucket selections. An empty value means no price filtering.
const (
	PriceBucketFree    = "free"
	PriceBucketUnder5  = "under5"
	PriceBucketUnder10 = "under10"
	PriceBucketUnder20 = "under20"
	PriceBucketUnder50 = "under50"
)

// FilterSpec is the facet selection applied to a browse query. Values within
// one facet are OR-combined, facets are AND-combined; an empty facet matches
// everything.
type FilterSpec struct {
	Genres    []string `json:"genre"`
	Features  []string `json:"features"`
	Types     []string `json:"type"`
	Platforms []string `json:"platforms"`
	Price     string   `json:"price,omitempty"`
}

type BrowseRequest struct {
	Filter   FilterSpec `json:"filter"`
	Search   string     `json:"search"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	// Signature is the filter signature echoed back from a previous browse
	// response. When it no longer matches the submitted filter the page
	// resets to 1.
	Signature string `json:"signature,omitempty"`
}

type BrowseResponse struct {
	Items      []CatalogItem `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	TotalItems int           `json:"total_items"`
	Signature  string        `json:"signature"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

package models

import (
	"time"
)

// Game is a purchasable base entry of the catalog. Price is kept as the raw
// admin-entered string ("59.99", "$59.99", "Free"); parsing happens in the
// pricing package so dirty data never breaks browsing.
type Game struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Price       string     `json:"price"`
	Discount    int        `json:"discount"`
	Type        string     `json:"type"`
	Genre       []string   `json:"genre"`
	Features    []string   `json:"features"`
	Platforms   []string   `json:"platforms"`
	Image       string     `json:"image,omitempty"`
	Developer   string     `json:"developer,omitempty"`
	Publisher   string     `json:"publisher,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

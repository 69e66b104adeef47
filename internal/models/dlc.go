package models

import (
	"time"
)

// DLC is a catalog entry dependent on a base game: addon, edition, demo or
// editor. GameID points at the parent game and is required for every type
// except edition (editions are self-sufficient).
type DLC struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Price       string     `json:"price"`
	Discount    int        `json:"discount"`
	Type        string     `json:"type"`
	GameID      string     `json:"game_id,omitempty"`
	Genre       []string   `json:"genre"`
	Features    []string   `json:"features"`
	Platforms   []string   `json:"platforms"`
	Image       string     `json:"image,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

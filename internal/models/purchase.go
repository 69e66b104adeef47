package models

import (
	"time"
)

// Purchase is one immutable row of the append-only ledger. FinalPrice is the
// amount actually charged for the line, formatted with two decimal places.
type Purchase struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user_id"`
	ItemID      string    `json:"item_id"`
	FinalPrice  string    `json:"final_price"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// Order is a purchase-record-to-be produced by checkout and consumed by the
// purchase repository as a single logical batch.
type Order struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user_id"`
	ItemID      string    `json:"item_id"`
	FinalPrice  string    `json:"final_price"`
	PurchasedAt time.Time `json:"purchased_at"`
}

type OrderLine struct {
	ItemID    string `json:"item_id"`
	Title     string `json:"title"`
	UnitPrice string `json:"unit_price"`
	Final     string `json:"final"`
}

// OrderSummary keeps the two discount layers observably distinct: UnitPrice
// per line and Subtotal are post-item-discount, DiscountAmount is the
// promo-only delta.
type OrderSummary struct {
	Lines          []OrderLine `json:"lines"`
	Subtotal       string      `json:"subtotal"`
	DiscountAmount string      `json:"discount_amount"`
	Total          string      `json:"total"`
	PromoPercent   int         `json:"promo_percent"`
}

type OrderResult struct {
	Orders  []Order      `json:"orders"`
	Summary OrderSummary `json:"summary"`
}

type LibraryEntry struct {
	Item        CatalogItem `json:"item"`
	FinalPrice  string      `json:"final_price"`
	PurchasedAt time.Time   `json:"purchased_at"`
}

package models

import (
	"time"
)

// CartItem is one line of locally-held purchase intent.
type CartItem struct {
	ItemID  string    `json:"item_id"`
	AddedAt time.Time `json:"added_at"`
}

// CartSnapshot is the per-account cart intent. It is not authoritative and is
// reconciled against the library before and after checkout.
type CartSnapshot struct {
	UserID int        `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// ItemIDs returns the item ids in insertion order.
func (c CartSnapshot) ItemIDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, it.ItemID)
	}
	return ids
}

// Contains reports whether the cart already holds the given item.
func (c CartSnapshot) Contains(itemID string) bool {
	for _, it := range c.Items {
		if it.ItemID == itemID {
			return true
		}
	}
	return false
}

type WishlistItem struct {
	ItemID  string    `json:"item_id"`
	AddedAt time.Time `json:"added_at"`
}

type WishlistSnapshot struct {
	UserID int            `json:"user_id"`
	Items  []WishlistItem `json:"items"`
}

func (w WishlistSnapshot) Contains(itemID string) bool {
	for _, it := range w.Items {
		if it.ItemID == itemID {
			return true
		}
	}
	return false
}

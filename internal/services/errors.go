package services

import (
	"errors"
	"fmt"

	"gamestoreBack/internal/entitlement"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrMissingParentGame rejects an addon/demo/editor entry submitted
	// without a parent game. Such a row could never be purchased.
	ErrMissingParentGame = errors.New("parent game required for this dlc type")
)

// BlockedError refuses a checkout or add-to-cart with the full structured
// detail a caller needs to render guidance: which items, which reason, which
// prerequisite.
type BlockedError struct {
	Items []entitlement.BlockedItem
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%d item(s) blocked from purchase", len(e.Items))
}

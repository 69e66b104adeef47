// Package entitlement derives ownership from the append-only purchase ledger
// and gates what an account may buy. Both halves are pure projections: the
// record set is passed in, never cached, because purchases can be appended by
// another flow at any time.
package entitlement

import (
	"gamestoreBack/internal/models"
)

// Library is the set of item ids an account owns.
type Library map[string]struct{}

// LibraryOf projects the purchase records of one account onto the owned item
// set. Repeated records for the same item collapse; ownership is idempotent.
func LibraryOf(userID int, records []models.Purchase) Library {
	lib := make(Library)
	for _, rec := range records {
		if rec.UserID != userID || rec.ItemID == "" {
			continue
		}
		lib[rec.ItemID] = struct{}{}
	}
	return lib
}

// Owns reports library membership.
func (l Library) Owns(itemID string) bool {
	_, ok := l[itemID]
	return ok
}

package services

import (
	"context"

	"gamestoreBack/internal/entitlement"
	"gamestoreBack/internal/models"
)

type LibraryService struct {
	PurchaseRepo PurchaseLedger
	Catalog      SnapshotSource
}

// GetLibrary resolves the owned set against the current snapshot, in catalog
// order, attaching the earliest purchase metadata per item. Owned ids that no
// longer resolve are skipped from the listing; they still count as owned for
// eligibility checks.
func (s *LibraryService) GetLibrary(ctx context.Context, userID int) ([]models.LibraryEntry, error) {
	records, err := s.PurchaseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	lib := entitlement.LibraryOf(userID, records)

	firstRecord := make(map[string]models.Purchase, len(lib))
	for _, rec := range records {
		if rec.UserID != userID {
			continue
		}
		if _, seen := firstRecord[rec.ItemID]; !seen {
			firstRecord[rec.ItemID] = rec
		}
	}

	snap, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var entries []models.LibraryEntry
	for _, item := range snap.Items() {
		if !lib.Owns(item.ID) {
			continue
		}
		rec := firstRecord[item.ID]
		entries = append(entries, models.LibraryEntry{
			Item:        item,
			FinalPrice:  rec.FinalPrice,
			PurchasedAt: rec.PurchasedAt,
		})
	}
	return entries, nil
}

// IsOwned answers the single-item ownership question the details page asks
// before offering a purchase.
func (s *LibraryService) IsOwned(ctx context.Context, userID int, itemID string) (bool, error) {
	records, err := s.PurchaseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return entitlement.LibraryOf(userID, records).Owns(itemID), nil
}

package services

import (
	"context"
	"testing"
	"time"

	"gamestoreBack/internal/models"
)

func TestGetLibraryResolvesInCatalogOrder(t *testing.T) {
	early := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)
	ledger := &stubLedger{records: []models.Purchase{
		{UserID: 1, ItemID: "g2", FinalPrice: "10.00", PurchasedAt: early},
		{UserID: 1, ItemID: "g1", FinalPrice: "50.00", PurchasedAt: late},
		{UserID: 1, ItemID: "g1", FinalPrice: "25.00", PurchasedAt: late.Add(time.Hour)},
		{UserID: 1, ItemID: "gone", FinalPrice: "1.00", PurchasedAt: early},
		{UserID: 2, ItemID: "d1", FinalPrice: "20.00", PurchasedAt: early},
	}}
	svc := &LibraryService{PurchaseRepo: ledger, Catalog: &stubSnapshot{snap: storeSnapshot()}}

	entries, err := svc.GetLibrary(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetLibrary: %v", err)
	}
	// Catalog order, duplicates collapsed, unresolvable ids skipped and
	// another account's purchases ignored.
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Item.ID != "g1" || entries[1].Item.ID != "g2" {
		t.Fatalf("unexpected order: %s, %s", entries[0].Item.ID, entries[1].Item.ID)
	}
	// The earliest record for g1 supplies the metadata.
	if entries[0].FinalPrice != "50.00" || !entries[0].PurchasedAt.Equal(late) {
		t.Fatalf("unexpected g1 metadata: %+v", entries[0])
	}
}

func TestIsOwned(t *testing.T) {
	ledger := &stubLedger{records: []models.Purchase{{UserID: 1, ItemID: "g1"}}}
	svc := &LibraryService{PurchaseRepo: ledger, Catalog: &stubSnapshot{snap: storeSnapshot()}}

	owned, err := svc.IsOwned(context.Background(), 1, "g1")
	if err != nil || !owned {
		t.Fatalf("expected owned, got %t err=%v", owned, err)
	}
	owned, err = svc.IsOwned(context.Background(), 1, "g2")
	if err != nil || owned {
		t.Fatalf("expected not owned, got %t err=%v", owned, err)
	}
}

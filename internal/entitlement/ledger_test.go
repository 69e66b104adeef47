package entitlement

import (
	"testing"

	"gamestoreBack/internal/models"
)

func TestLibraryOf(t *testing.T) {
	records := []models.Purchase{
		{UserID: 1, ItemID: "g1"},
		{UserID: 1, ItemID: "g1"},
		{UserID: 1, ItemID: "g2"},
		{UserID: 2, ItemID: "g3"},
		{UserID: 1, ItemID: ""},
	}
	lib := LibraryOf(1, records)

	if len(lib) != 2 {
		t.Fatalf("expected 2 owned items, got %d", len(lib))
	}
	if !lib.Owns("g1") || !lib.Owns("g2") {
		t.Fatal("expected g1 and g2 to be owned")
	}
	if lib.Owns("g3") {
		t.Fatal("another account's purchase leaked into the library")
	}
	if lib.Owns("") {
		t.Fatal("empty item id should never be owned")
	}
}

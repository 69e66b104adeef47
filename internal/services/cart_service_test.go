package services

import (
	"context"
	"errors"
	"testing"

	"gamestoreBack/internal/entitlement"
	"gamestoreBack/internal/models"
)

type stubWishlist struct {
	snapshot models.WishlistSnapshot
}

func (s *stubWishlist) Get(ctx context.Context, userID int) (models.WishlistSnapshot, error) {
	return s.snapshot, nil
}

func (s *stubWishlist) AddItem(ctx context.Context, userID int, itemID string) (models.WishlistSnapshot, error) {
	if !s.snapshot.Contains(itemID) {
		s.snapshot.Items = append(s.snapshot.Items, models.WishlistItem{ItemID: itemID})
	}
	return s.snapshot, nil
}

func (s *stubWishlist) RemoveItem(ctx context.Context, userID int, itemID string) (models.WishlistSnapshot, error) {
	var kept []models.WishlistItem
	for _, it := range s.snapshot.Items {
		if it.ItemID != itemID {
			kept = append(kept, it)
		}
	}
	s.snapshot.Items = kept
	return s.snapshot, nil
}

func newCartService(cart *stubCart, wishlist *stubWishlist, ledger *stubLedger) *CartService {
	return &CartService{
		CartRepo:     cart,
		WishlistRepo: wishlist,
		PurchaseRepo: ledger,
		Catalog:      &stubSnapshot{snap: storeSnapshot()},
	}
}

func TestAddToCartRefusesOwnedItem(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1)}
	ledger := &stubLedger{records: []models.Purchase{{UserID: 1, ItemID: "g1"}}}
	svc := newCartService(cart, &stubWishlist{}, ledger)

	_, err := svc.AddToCart(context.Background(), 1, "g1")
	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if blocked.Items[0].Reason != entitlement.ReasonAlreadyOwned {
		t.Fatalf("unexpected reason: %s", blocked.Items[0].Reason)
	}
	if len(cart.snapshot.Items) != 0 {
		t.Fatal("blocked item must not enter the cart")
	}
}

func TestAddToCartRefusesAddonWithoutParent(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1)}
	svc := newCartService(cart, &stubWishlist{}, &stubLedger{})

	_, err := svc.AddToCart(context.Background(), 1, "d1")
	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if blocked.Items[0].Reason != entitlement.ReasonMissingPrerequisite {
		t.Fatalf("unexpected reason: %s", blocked.Items[0].Reason)
	}
}

func TestAddToCartUnknownItem(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1)}
	svc := newCartService(cart, &stubWishlist{}, &stubLedger{})

	_, err := svc.AddToCart(context.Background(), 1, "nope")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestGetCartReportsBlockedWithoutDropping(t *testing.T) {
	// g1 was bought on another device after it entered the cart.
	cart := &stubCart{snapshot: cartWith(1, "g1", "g2")}
	ledger := &stubLedger{records: []models.Purchase{{UserID: 1, ItemID: "g1"}}}
	svc := newCartService(cart, &stubWishlist{}, ledger)

	view, err := svc.GetCart(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("blocked lines must stay visible, got %d items", len(view.Items))
	}
	if len(view.Blocked) != 1 || view.Blocked[0].ItemID != "g1" {
		t.Fatalf("unexpected blocked: %+v", view.Blocked)
	}
	// The summary only prices what could actually be bought.
	if view.Summary.Total != "10.00" {
		t.Fatalf("expected total 10.00, got %s", view.Summary.Total)
	}
}

func TestMoveToWishlist(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1, "g1", "g2")}
	wishlist := &stubWishlist{}
	svc := newCartService(cart, wishlist, &stubLedger{})

	view, err := svc.MoveToWishlist(context.Background(), 1, "g1")
	if err != nil {
		t.Fatalf("MoveToWishlist: %v", err)
	}
	if !wishlist.snapshot.Contains("g1") {
		t.Fatal("item should land on the wishlist")
	}
	if len(view.Items) != 1 || view.Items[0].ID != "g2" {
		t.Fatalf("unexpected cart after move: %+v", view.Items)
	}
}

func TestWishlistSkipsUnresolvableIDs(t *testing.T) {
	wishlist := &stubWishlist{snapshot: models.WishlistSnapshot{
		UserID: 1,
		Items:  []models.WishlistItem{{ItemID: "g2"}, {ItemID: "gone"}},
	}}
	svc := newCartService(&stubCart{}, wishlist, &stubLedger{})

	items, err := svc.Wishlist(context.Background(), 1)
	if err != nil {
		t.Fatalf("Wishlist: %v", err)
	}
	if len(items) != 1 || items[0].ID != "g2" {
		t.Fatalf("unexpected wishlist: %+v", items)
	}
}

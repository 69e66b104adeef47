package services

import (
	"context"

	"gamestoreBack/internal/entitlement"
	"gamestoreBack/internal/models"
	"gamestoreBack/internal/pricing"
)

type CartService struct {
	CartRepo     CartIntents
	WishlistRepo WishlistIntents
	PurchaseRepo PurchaseLedger
	Catalog      SnapshotSource
}

// CartView is the resolved cart plus the validation state the basket page
// shows: lines that would block checkout right now, and the running summary
// over the purchasable lines.
type CartView struct {
	Items   []models.CatalogItem      `json:"items"`
	Blocked []entitlement.BlockedItem `json:"blocked,omitempty"`
	Summary models.OrderSummary       `json:"summary"`
}

// AddToCart gates intent the same way checkout does: an item that is owned,
// missing its prerequisite or unresolvable is refused with the structured
// reason. Adding an item already in the cart is a no-op.
func (s *CartService) AddToCart(ctx context.Context, userID int, itemID string) (models.CartSnapshot, error) {
	snap, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	if _, ok := snap.Find(itemID); !ok {
		return models.CartSnapshot{}, ErrItemNotFound
	}

	records, err := s.PurchaseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	lib := entitlement.LibraryOf(userID, records)
	cls := entitlement.Classify([]string{itemID}, lib, snap)
	if len(cls.Blocked) > 0 {
		return models.CartSnapshot{}, &BlockedError{Items: cls.Blocked}
	}

	return s.CartRepo.AddItem(ctx, userID, itemID)
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID int, itemID string) (models.CartSnapshot, error) {
	return s.CartRepo.RemoveItems(ctx, userID, []string{itemID})
}

// GetCart resolves the stored intent against a fresh snapshot and library.
// Blocked lines stay in the cart; they are reported, never silently dropped.
func (s *CartService) GetCart(ctx context.Context, userID int) (CartView, error) {
	cart, err := s.CartRepo.Get(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	snap, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		return CartView{}, err
	}
	records, err := s.PurchaseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	lib := entitlement.LibraryOf(userID, records)
	cls := entitlement.Classify(cart.ItemIDs(), lib, snap)

	var view CartView
	for _, id := range cart.ItemIDs() {
		if item, ok := snap.Find(id); ok {
			view.Items = append(view.Items, item)
		}
	}
	view.Blocked = cls.Blocked
	view.Summary = pricing.Aggregate(cls.Eligible, 0).OrderSummary()
	return view, nil
}

// MoveToWishlist adds the item to the wishlist (idempotently) and removes it
// from the cart.
func (s *CartService) MoveToWishlist(ctx context.Context, userID int, itemID string) (CartView, error) {
	if _, err := s.WishlistRepo.AddItem(ctx, userID, itemID); err != nil {
		return CartView{}, err
	}
	if _, err := s.CartRepo.RemoveItems(ctx, userID, []string{itemID}); err != nil {
		return CartView{}, err
	}
	return s.GetCart(ctx, userID)
}

// AddToWishlist saves an item for later. Unlike the cart there is no
// eligibility gate, wishing for something already owned is harmless.
func (s *CartService) AddToWishlist(ctx context.Context, userID int, itemID string) error {
	snap, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		return err
	}
	if _, ok := snap.Find(itemID); !ok {
		return ErrItemNotFound
	}
	_, err = s.WishlistRepo.AddItem(ctx, userID, itemID)
	return err
}

// Wishlist returns the resolved wishlist in insertion order. Ids that no
// longer resolve against the catalog are skipped.
func (s *CartService) Wishlist(ctx context.Context, userID int) ([]models.CatalogItem, error) {
	wl, err := s.WishlistRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var items []models.CatalogItem
	for _, it := range wl.Items {
		if item, ok := snap.Find(it.ItemID); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *CartService) RemoveFromWishlist(ctx context.Context, userID int, itemID string) error {
	_, err := s.WishlistRepo.RemoveItem(ctx, userID, itemID)
	return err
}

package services

import (
	"context"
	"errors"
	"testing"

	"gamestoreBack/internal/catalog"
	"gamestoreBack/internal/entitlement"
	"gamestoreBack/internal/models"
	"gamestoreBack/internal/repositories"
)

type stubCart struct {
	snapshot  models.CartSnapshot
	removed   []string
	removeErr error
}

func (s *stubCart) Get(ctx context.Context, userID int) (models.CartSnapshot, error) {
	return s.snapshot, nil
}

func (s *stubCart) AddItem(ctx context.Context, userID int, itemID string) (models.CartSnapshot, error) {
	s.snapshot.Items = append(s.snapshot.Items, models.CartItem{ItemID: itemID})
	return s.snapshot, nil
}

func (s *stubCart) RemoveItems(ctx context.Context, userID int, itemIDs []string) (models.CartSnapshot, error) {
	if s.removeErr != nil {
		return models.CartSnapshot{}, s.removeErr
	}
	s.removed = append(s.removed, itemIDs...)
	drop := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		drop[id] = struct{}{}
	}
	var kept []models.CartItem
	for _, it := range s.snapshot.Items {
		if _, ok := drop[it.ItemID]; !ok {
			kept = append(kept, it)
		}
	}
	s.snapshot.Items = kept
	return s.snapshot, nil
}

type stubLedger struct {
	records   []models.Purchase
	submitted [][]models.Order
	submitErr error
}

func (s *stubLedger) ListByUserID(ctx context.Context, userID int) ([]models.Purchase, error) {
	return s.records, nil
}

func (s *stubLedger) SubmitBatch(ctx context.Context, orders []models.Order) error {
	if s.submitErr != nil {
		return s.submitErr
	}
	s.submitted = append(s.submitted, orders)
	return nil
}

type stubSnapshot struct {
	snap *catalog.Snapshot
}

func (s *stubSnapshot) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	return s.snap, nil
}

func storeSnapshot() *catalog.Snapshot {
	games := []models.Game{
		{ID: "g1", Title: "Starfall", Price: "100", Discount: 50},
		{ID: "g2", Title: "Quiet Farm", Price: "10"},
	}
	dlcs := []models.DLC{
		{ID: "d1", Title: "Crimson Tide", Type: "addon", GameID: "g1", Price: "20"},
	}
	return catalog.NewSnapshot(games, dlcs)
}

func cartWith(userID int, ids ...string) models.CartSnapshot {
	cart := models.CartSnapshot{UserID: userID}
	for _, id := range ids {
		cart.Items = append(cart.Items, models.CartItem{ItemID: id})
	}
	return cart
}

func newOrderService(cart *stubCart, ledger *stubLedger) *OrderService {
	return &OrderService{
		CartRepo:     cart,
		PurchaseRepo: ledger,
		Catalog:      &stubSnapshot{snap: storeSnapshot()},
		Promo:        &PromoService{Codes: map[string]int{"orxan50": 50}},
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1, "g1", "g2")}
	ledger := &stubLedger{}
	svc := newOrderService(cart, ledger)

	result, err := svc.Checkout(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if len(result.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(result.Orders))
	}
	if result.Orders[0].ID == "" || result.Orders[0].ID == result.Orders[1].ID {
		t.Fatal("orders need distinct generated ids")
	}
	if result.Orders[0].FinalPrice != "50.00" || result.Orders[1].FinalPrice != "10.00" {
		t.Fatalf("unexpected final prices: %s, %s", result.Orders[0].FinalPrice, result.Orders[1].FinalPrice)
	}
	if len(ledger.submitted) != 1 {
		t.Fatalf("expected a single batch, got %d", len(ledger.submitted))
	}
	// Reconciliation removes exactly what was purchased.
	if len(cart.removed) != 2 || cart.removed[0] != "g1" || cart.removed[1] != "g2" {
		t.Fatalf("unexpected cart removal: %v", cart.removed)
	}
	if len(cart.snapshot.Items) != 0 {
		t.Fatalf("cart should be empty after full checkout, got %v", cart.snapshot.ItemIDs())
	}
}

func TestCheckoutAppliesPromoAfterItemDiscount(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1, "g1")}
	ledger := &stubLedger{}
	svc := newOrderService(cart, ledger)

	result, err := svc.Checkout(context.Background(), 1, "ORXAN50")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	// 100 halved by the item discount, halved again by the promo.
	if result.Orders[0].FinalPrice != "25.00" {
		t.Fatalf("expected 25.00, got %s", result.Orders[0].FinalPrice)
	}
	if result.Summary.Subtotal != "50.00" || result.Summary.DiscountAmount != "25.00" || result.Summary.Total != "25.00" {
		t.Fatalf("unexpected summary: %+v", result.Summary)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1)}
	ledger := &stubLedger{}
	svc := newOrderService(cart, ledger)

	_, err := svc.Checkout(context.Background(), 1, "")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(ledger.submitted) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestCheckoutBlockedBatchIsAllOrNothing(t *testing.T) {
	// g2 is already owned; the whole batch must be refused even though g1
	// alone would be purchasable.
	cart := &stubCart{snapshot: cartWith(1, "g1", "g2")}
	ledger := &stubLedger{records: []models.Purchase{{UserID: 1, ItemID: "g2"}}}
	svc := newOrderService(cart, ledger)

	_, err := svc.Checkout(context.Background(), 1, "")
	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	if len(blocked.Items) != 1 || blocked.Items[0].ItemID != "g2" || blocked.Items[0].Reason != entitlement.ReasonAlreadyOwned {
		t.Fatalf("unexpected blocked detail: %+v", blocked.Items)
	}
	if len(ledger.submitted) != 0 {
		t.Fatal("nothing should be persisted")
	}
	if len(cart.removed) != 0 || len(cart.snapshot.Items) != 2 {
		t.Fatal("cart must stay untouched on a blocked checkout")
	}
}

func TestCheckoutAddonWithoutParent(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1, "d1")}
	ledger := &stubLedger{}
	svc := newOrderService(cart, ledger)

	_, err := svc.Checkout(context.Background(), 1, "")
	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected BlockedError, got %v", err)
	}
	b := blocked.Items[0]
	if b.Reason != entitlement.ReasonMissingPrerequisite || b.RequiredID != "g1" {
		t.Fatalf("unexpected blocked detail: %+v", b)
	}

	// After the parent lands in the ledger the same cart goes through.
	ledger.records = []models.Purchase{{UserID: 1, ItemID: "g1"}}
	result, err := svc.Checkout(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("Checkout after parent purchase: %v", err)
	}
	if len(result.Orders) != 1 || result.Orders[0].ItemID != "d1" {
		t.Fatalf("unexpected orders: %+v", result.Orders)
	}
}

func TestCheckoutPersistFailureLeavesCart(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1, "g1")}
	ledger := &stubLedger{submitErr: repositories.ErrAlreadyOwned}
	svc := newOrderService(cart, ledger)

	_, err := svc.Checkout(context.Background(), 1, "")
	if !errors.Is(err, repositories.ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned to surface, got %v", err)
	}
	if len(cart.removed) != 0 || len(cart.snapshot.Items) != 1 {
		t.Fatal("cart must stay untouched when the persist fails")
	}
}

type failingSnapshot struct {
	err error
}

func (s *failingSnapshot) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	return nil, s.err
}

func TestCheckoutSnapshotReadFailureLeavesEverything(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1, "g1")}
	ledger := &stubLedger{}
	svc := &OrderService{
		CartRepo:     cart,
		PurchaseRepo: ledger,
		Catalog:      &failingSnapshot{err: errors.New("catalog unavailable")},
		Promo:        &PromoService{},
	}

	_, err := svc.Checkout(context.Background(), 1, "")
	if err == nil || err.Error() != "catalog unavailable" {
		t.Fatalf("expected the read error to surface, got %v", err)
	}
	if len(ledger.submitted) != 0 {
		t.Fatal("nothing should be persisted")
	}
	if len(cart.removed) != 0 || len(cart.snapshot.Items) != 1 {
		t.Fatal("cart must stay untouched when validation inputs cannot be read")
	}
}

func TestBuyNowLeavesOtherCartLines(t *testing.T) {
	cart := &stubCart{snapshot: cartWith(1, "g1", "g2")}
	ledger := &stubLedger{}
	svc := newOrderService(cart, ledger)

	result, err := svc.BuyNow(context.Background(), 1, "g2", "")
	if err != nil {
		t.Fatalf("BuyNow: %v", err)
	}
	if len(result.Orders) != 1 || result.Orders[0].ItemID != "g2" {
		t.Fatalf("unexpected orders: %+v", result.Orders)
	}
	if len(cart.snapshot.Items) != 1 || cart.snapshot.Items[0].ItemID != "g1" {
		t.Fatalf("expected g1 to stay in the cart, got %v", cart.snapshot.ItemIDs())
	}
}

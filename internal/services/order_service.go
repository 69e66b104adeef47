package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"gamestoreBack/internal/checkout"
	"gamestoreBack/internal/entitlement"
	"gamestoreBack/internal/models"
	"gamestoreBack/internal/pricing"
)

// OrderService drives the checkout state machine: validate against a freshly
// fetched library, price, persist the batch, then prune the cart. The batch
// is all-or-nothing and the cart is only touched after the persist succeeds,
// so a failed attempt leaves local state exactly as it was.
type OrderService struct {
	CartRepo     CartIntents
	PurchaseRepo PurchaseLedger
	Catalog      SnapshotSource
	Promo        *PromoService
	InfoLog      *log.Logger
}

// Checkout converts the whole cart into purchase records.
func (s *OrderService) Checkout(ctx context.Context, userID int, promoCode string) (models.OrderResult, error) {
	cart, err := s.CartRepo.Get(ctx, userID)
	if err != nil {
		return models.OrderResult{}, err
	}
	return s.run(ctx, userID, cart.ItemIDs(), promoCode, true)
}

// BuyNow purchases a single item through the same pipeline. The stored cart
// is only touched to drop that item if it happens to be in it.
func (s *OrderService) BuyNow(ctx context.Context, userID int, itemID, promoCode string) (models.OrderResult, error) {
	return s.run(ctx, userID, []string{itemID}, promoCode, false)
}

func (s *OrderService) run(ctx context.Context, userID int, itemIDs []string, promoCode string, wholeCart bool) (models.OrderResult, error) {
	chk := checkout.New()

	if err := chk.Advance(checkout.StateValidating); err != nil {
		return models.OrderResult{}, err
	}
	if len(itemIDs) == 0 {
		chk.Fail(checkout.FailEmptyCart)
		return models.OrderResult{}, ErrEmptyCart
	}

	// Ownership can change between add-to-cart and checkout; the library is
	// re-derived here, never reused from an earlier resolution.
	snap, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		chk.Fail(checkout.FailValidation)
		return models.OrderResult{}, err
	}
	records, err := s.PurchaseRepo.ListByUserID(ctx, userID)
	if err != nil {
		chk.Fail(checkout.FailValidation)
		return models.OrderResult{}, err
	}
	lib := entitlement.LibraryOf(userID, records)
	cls := entitlement.Classify(itemIDs, lib, snap)
	if len(cls.Blocked) > 0 {
		chk.Fail(checkout.FailBlockedItems)
		return models.OrderResult{}, &BlockedError{Items: cls.Blocked}
	}

	if err := chk.Advance(checkout.StatePricing); err != nil {
		return models.OrderResult{}, err
	}
	promoPercent := s.Promo.Resolve(promoCode)
	summary := pricing.Aggregate(cls.Eligible, promoPercent)

	if err := chk.Advance(checkout.StatePersisting); err != nil {
		return models.OrderResult{}, err
	}
	now := time.Now().UTC()
	orders := make([]models.Order, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		orders = append(orders, models.Order{
			ID:          uuid.NewString(),
			UserID:      userID,
			ItemID:      line.ItemID,
			FinalPrice:  line.Final.StringFixed(2),
			PurchasedAt: now,
		})
	}
	if err := s.PurchaseRepo.SubmitBatch(ctx, orders); err != nil {
		chk.Fail(checkout.FailPersistence)
		return models.OrderResult{}, err
	}

	if err := chk.Advance(checkout.StateReconciling); err != nil {
		return models.OrderResult{}, err
	}
	purchased := make([]string, 0, len(orders))
	for _, o := range orders {
		purchased = append(purchased, o.ItemID)
	}
	if _, err := s.CartRepo.RemoveItems(ctx, userID, purchased); err != nil {
		// The purchases are committed at this point; only the local intent
		// cleanup failed. Surface it, the ledger stays authoritative.
		chk.Fail(checkout.FailReconcile)
		return models.OrderResult{}, err
	}

	if err := chk.Advance(checkout.StateDone); err != nil {
		return models.OrderResult{}, err
	}
	if s.InfoLog != nil {
		s.InfoLog.Printf("checkout done: user=%d lines=%d total=%s whole_cart=%t",
			userID, len(orders), summary.Total.StringFixed(2), wholeCart)
	}
	return models.OrderResult{Orders: orders, Summary: summary.OrderSummary()}, nil
}

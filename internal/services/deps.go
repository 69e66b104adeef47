package services

import (
	"context"

	"gamestoreBack/internal/catalog"
	"gamestoreBack/internal/models"
)

// Collaborator seams for the intent/checkout services. The concrete
// repositories satisfy these; tests swap in stubs.

type CartIntents interface {
	Get(ctx context.Context, userID int) (models.CartSnapshot, error)
	AddItem(ctx context.Context, userID int, itemID string) (models.CartSnapshot, error)
	RemoveItems(ctx context.Context, userID int, itemIDs []string) (models.CartSnapshot, error)
}

type WishlistIntents interface {
	Get(ctx context.Context, userID int) (models.WishlistSnapshot, error)
	AddItem(ctx context.Context, userID int, itemID string) (models.WishlistSnapshot, error)
	RemoveItem(ctx context.Context, userID int, itemID string) (models.WishlistSnapshot, error)
}

type PurchaseLedger interface {
	ListByUserID(ctx context.Context, userID int) ([]models.Purchase, error)
	SubmitBatch(ctx context.Context, orders []models.Order) error
}

type SnapshotSource interface {
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
}

type GameSource interface {
	GetAllGames(ctx context.Context) ([]models.Game, error)
}

type DLCSource interface {
	GetAllDLCs(ctx context.Context) ([]models.DLC, error)
}

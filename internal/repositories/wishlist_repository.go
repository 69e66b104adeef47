package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gamestoreBack/internal/models"
)

// WishlistRepository keeps per-account wishlist intent in redis, keyed
// wishlist:<user_id>.
type WishlistRepository struct {
	RDB *redis.Client
}

func wishlistKey(userID int) string {
	return fmt.Sprintf("wishlist:%d", userID)
}

func (r *WishlistRepository) Get(ctx context.Context, userID int) (models.WishlistSnapshot, error) {
	raw, err := r.RDB.Get(ctx, wishlistKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.WishlistSnapshot{UserID: userID}, nil
	}
	if err != nil {
		return models.WishlistSnapshot{}, err
	}
	var wl models.WishlistSnapshot
	if err := json.Unmarshal([]byte(raw), &wl); err != nil {
		return models.WishlistSnapshot{}, fmt.Errorf("decode wishlist for user %d: %w", userID, err)
	}
	wl.UserID = userID
	return wl, nil
}

func (r *WishlistRepository) Put(ctx context.Context, wl models.WishlistSnapshot) error {
	data, err := json.Marshal(wl)
	if err != nil {
		return err
	}
	return r.RDB.Set(ctx, wishlistKey(wl.UserID), data, 0).Err()
}

// AddItem is idempotent: adding an item already on the wishlist is a no-op.
func (r *WishlistRepository) AddItem(ctx context.Context, userID int, itemID string) (models.WishlistSnapshot, error) {
	wl, err := r.Get(ctx, userID)
	if err != nil {
		return models.WishlistSnapshot{}, err
	}
	if wl.Contains(itemID) {
		return wl, nil
	}
	wl.Items = append(wl.Items, models.WishlistItem{ItemID: itemID, AddedAt: time.Now()})
	if err := r.Put(ctx, wl); err != nil {
		return models.WishlistSnapshot{}, err
	}
	return wl, nil
}

func (r *WishlistRepository) RemoveItem(ctx context.Context, userID int, itemID string) (models.WishlistSnapshot, error) {
	wl, err := r.Get(ctx, userID)
	if err != nil {
		return models.WishlistSnapshot{}, err
	}
	kept := wl.Items[:0]
	for _, it := range wl.Items {
		if it.ItemID != itemID {
			kept = append(kept, it)
		}
	}
	wl.Items = kept
	if err := r.Put(ctx, wl); err != nil {
		return models.WishlistSnapshot{}, err
	}
	return wl, nil
}

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

// CartRepository keeps per-account cart intent as a JSON blob in redis,
// keyed cart:<user_id>. The cart is single-writer-per-account; there is no
// multi-writer merge.
type CartRepository struct {
	RDB *redis.Client
}

func cartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (r *CartRepository) Get(ctx context.Context, userID int) (models.CartSnapshot, error) {
	raw, err := r.RDB.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.CartSnapshot{UserID: userID}, nil
	}
	if err != nil {
		return models.CartSnapshot{}, err
	}
	var cart models.CartSnapshot
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return models.CartSnapshot{}, fmt.Errorf("decode cart for user %d: %w", userID, err)
	}
	cart.UserID = userID
	return cart, nil
}

func (r *CartRepository) Put(ctx context.Context, cart models.CartSnapshot) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.RDB.Set(ctx, cartKey(cart.UserID), data, 0).Err()
}

// AddItem appends an item unless it is already present.
func (r *CartRepository) AddItem(ctx context.Context, userID int, itemID string) (models.CartSnapshot, error) {
	cart, err := r.Get(ctx, userID)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	if cart.Contains(itemID) {
		return cart, nil
	}
	cart.Items = append(cart.Items, models.CartItem{ItemID: itemID, AddedAt: time.Now()})
	if err := r.Put(ctx, cart); err != nil {
		return models.CartSnapshot{}, err
	}
	return cart, nil
}

// RemoveItems drops exactly the given item ids, leaving every other line in
// place and in order.
func (r *CartRepository) RemoveItems(ctx context.Context, userID int, itemIDs []string) (models.CartSnapshot, error) {
	cart, err := r.Get(ctx, userID)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	drop := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		drop[id] = struct{}{}
	}
	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if _, gone := drop[it.ItemID]; !gone {
			kept = append(kept, it)
		}
	}
	cart.Items = kept
	if err := r.Put(ctx, cart); err != nil {
		return models.CartSnapshot{}, err
	}
	return cart, nil
}

func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	return r.RDB.Del(ctx, cartKey(userID)).Err()
}

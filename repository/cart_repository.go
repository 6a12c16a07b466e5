package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jdjewellers/storefront-backend/models"
	"github.com/redis/go-redis/v9"
)

// CartRepository persists the whole cart as one serialized blob per
// session key. There is no field-level update; every write replaces the
// full line list.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func (r *RedisCartRepository) key(sessionID string) string {
	return "cart_" + sessionID
}

// Get returns nil, nil when no cart exists for the session.
func (r *RedisCartRepository) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	// Carts never expire; the session identifier has no expiry either.
	return r.client.Set(ctx, r.key(cart.SessionID), data, 0).Err()
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}

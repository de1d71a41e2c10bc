package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/muhammadheryan/tuba-user/cmd/redis"
	"github.com/muhammadheryan/tuba-user/model"
	goredis "github.com/redis/go-redis/v9"
)

const userKeyPrefix = "user:"

// Repository caches user snapshots in Redis. Without a client every call is a no-op
// and every read a miss.
type Repository interface {
	Ping(ctx context.Context) error
	// GetUser returns nil on a cache miss
	GetUser(ctx context.Context, id uint64) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, ids ...uint64) error
}

type redis struct {
	ttl time.Duration
}

// NewRepository returns a Redis Repository implementation
func NewRepository(ttl time.Duration) Repository {
	return &redis{ttl: ttl}
}

func userKey(id uint64) string {
	return fmt.Sprintf("%s%d", userKeyPrefix, id)
}

func (r *redis) Ping(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}

func (r *redis) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	client := redisclient.Get()
	if client == nil || id == 0 {
		return nil, nil
	}
	val, err := client.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(val, &user); err != nil {
		// stale or foreign payload, drop it
		_ = client.Del(ctx, userKey(id)).Err()
		return nil, nil
	}
	return &user, nil
}

func (r *redis) SetUser(ctx context.Context, user *model.User) error {
	client := redisclient.Get()
	if client == nil || user == nil || user.ID == 0 {
		return nil
	}
	val, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return client.Set(ctx, userKey(user.ID), val, r.ttl).Err()
}

func (r *redis) DeleteUser(ctx context.Context, ids ...uint64) error {
	client := redisclient.Get()
	if client == nil || len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, userKey(id))
	}
	return client.Del(ctx, keys...).Err()
}

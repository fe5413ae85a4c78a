package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/redis/go-redis/v9"
)

// Fixed key names for the warm-start cache: one serialized profile blob and
// one raw user id. The remote store stays authoritative; a stale or missing
// entry just means an extra profile fetch.
const (
	userProfileKey = "pilgrim:user_profile"
	userIDKey      = "pilgrim:user_id"
)

const profileTTL = 24 * time.Hour

type ProfileCache struct {
	client *redis.Client
}

// New connects to Redis for the warm-start profile cache. An empty addr
// disables the cache; every lookup then misses and callers fall through to
// the store.
func New(addr, password string, db int) *ProfileCache {
	if addr == "" {
		return &ProfileCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &ProfileCache{client: client}
}

func (c *ProfileCache) SetProfile(ctx context.Context, user *model.User) error {
	if c.client == nil {
		return nil
	}

	blob, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	err = c.client.Set(ctx, userProfileKey, blob, profileTTL).Err()
	if err != nil {
		return err
	}

	return c.client.Set(ctx, userIDKey, user.ID, profileTTL).Err()
}

// Profile returns the cached profile blob, or (nil, nil) on a miss.
func (c *ProfileCache) Profile(ctx context.Context) (*model.User, error) {
	if c.client == nil {
		return nil, nil
	}

	blob, err := c.client.Get(ctx, userProfileKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := &model.User{}
	err = json.Unmarshal(blob, user)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached profile: %w", err)
	}

	return user, nil
}

// UserID returns the cached raw user id, or "" on a miss.
func (c *ProfileCache) UserID(ctx context.Context) (string, error) {
	if c.client == nil {
		return "", nil
	}

	id, err := c.client.Get(ctx, userIDKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return id, nil
}

func (c *ProfileCache) Clear(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	return c.client.Del(ctx, userProfileKey, userIDKey).Err()
}

func (c *ProfileCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const denylistPrefix = "denylist:"

// TokenDenylist tracks revoked bearer tokens in redis until their natural
// expiry. A nil client means revocation is disabled and nothing is denied.
type TokenDenylist struct {
	cache *redis.Client
}

func NewTokenDenylist(cache *redis.Client) *TokenDenylist {
	return &TokenDenylist{cache: cache}
}

func (d *TokenDenylist) Add(tokenString string, expiration time.Duration) error {
	if d.cache == nil {
		return nil
	}
	key := denylistPrefix + tokenString
	return d.cache.Set(context.Background(), key, 1, expiration).Err()
}

func (d *TokenDenylist) Contains(tokenString string) (bool, error) {
	if d.cache == nil {
		return false, nil
	}
	key := denylistPrefix + tokenString
	val, err := d.cache.Get(context.Background(), key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return val != "", nil
}

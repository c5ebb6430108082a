package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // For building cache keys
	"time"          // TTLs

	"github.com/redis/go-redis/v9" // Redis client
)

// All helpers tolerate a nil client so the server (and tests) can run
// without a cache: every operation becomes a miss.

// UserInfoKey is the cache key for a user's /user/info aggregate
func UserInfoKey(userID uint) string {
	return "userinfo:user:" + strconv.Itoa(int(userID))
}

// Get retrieves a value from Redis and unmarshals it into dest.
// Returns false when the key does not exist.
func Get(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Set stores a value in Redis with the given TTL
func Set(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// InvalidateUser drops the cached /user/info aggregate for a user.
// Called after every mutation to that user's data.
func InvalidateUser(ctx context.Context, rdb *redis.Client, userID uint) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, UserInfoKey(userID)).Err()
}

package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Priyankavya/FitnessApp/config"
)

var (
	redisClient *redis.Client
	redisCtx    = context.Background()
)

// InitRedis connects the shared client used for short-lived tokens.
func InitRedis(cfg *config.Config) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := redisClient.Ping(redisCtx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// SetToken stores a value under key with a TTL.
func SetToken(key, value string, ttl time.Duration) error {
	return redisClient.Set(redisCtx, key, value, ttl).Err()
}

// GetToken returns the value stored under key.
func GetToken(key string) (string, error) {
	return redisClient.Get(redisCtx, key).Result()
}

// DeleteToken removes key.
func DeleteToken(key string) error {
	return redisClient.Del(redisCtx, key).Err()
}

package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/levelup/levelup-backend/config"
	"github.com/redis/go-redis/v9"
)

// InitRedis connects to REDIS_ADDR. An empty address disables redis and
// returns a nil client, in which case callers fall back to in-memory state.
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, continuing without Redis")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := PingRedis(context.Background(), client); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}

	log.Printf("✅ Connected to Redis at %s", cfg.RedisAddr)
	return client, nil
}

// PingRedis checks the connection with a short timeout.
func PingRedis(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_, err := client.Ping(ctx).Result()
	return err
}

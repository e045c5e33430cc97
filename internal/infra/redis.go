package infra

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the draft-store Redis. Returns nil when REDIS_URL is
// unset; callers fall back to the in-process store.
func InitRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("Error parsing REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}

	return client
}

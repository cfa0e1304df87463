package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// RateLimiter limits requests per client IP. With a redis client the counters
// are shared across instances; otherwise they live in process memory.
func RateLimiter(perMinute int, rdb *redis.Client) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 100
	}
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  int64(perMinute),
	}

	var store limiter.Store = memory.NewStore()
	if rdb != nil {
		redisStore, err := sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{
			Prefix: "levelup:ratelimit",
		})
		if err != nil {
			log.Printf("⚠️ Redis rate limit store unavailable, using memory: %v", err)
		} else {
			store = redisStore
		}
	}

	// 📊 Limiter instance
	instance := limiter.New(store, rate)

	// 🚦 Gin-compatible middleware
	return ginlimiter.NewMiddleware(instance)
}

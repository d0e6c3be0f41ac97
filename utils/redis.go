package utils

import (
	"context"
	"strconv"
	"time"

	"github.com/ieee-swc/ClubBack/config"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	cfg := config.GetConfig()
	db, _ := strconv.Atoi(cfg.RedisDB)

	Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPass,
		DB:       db,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		Fatal("Redis connection failed", "error", err)
	}

	Success("Redis connected successfully.")
}

// CacheGet returns the cached value for key, or "" when Redis is not
// configured, the key is absent, or the lookup fails. Cache misses are never
// an error for callers.
func CacheGet(key string) string {
	if Redis == nil {
		return ""
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

func CacheSet(key, value string, ttl time.Duration) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(Ctx, key, value, ttl).Err(); err != nil {
		Warn("Cache set failed", "key", key, "err", err)
	}
}

func CacheDel(key string) {
	if Redis == nil {
		return
	}
	_ = Redis.Del(Ctx, key).Err()
}

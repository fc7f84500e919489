package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/labflow/reagent-inventory/pkg/logger"
)

// CacheConfig holds cache configuration
type CacheConfig struct {
	DefaultTTL       time.Duration // Default cache TTL
	CacheableMethods []string      // HTTP methods to cache
	CacheableStatus  []int         // HTTP status codes to cache
	PathPrefix       string        // Only responses under this prefix are cached
}

// DefaultCacheConfig returns default cache configuration.
// The TTL is short: the inventory list changes whenever a record is
// saved and every save also flushes the cache, so this only has to
// absorb read bursts between writes.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:       30 * time.Second,
		CacheableMethods: []string{"GET", "HEAD"},
		CacheableStatus:  []int{200, 404},
		PathPrefix:       "/api/reagents",
	}
}

// CacheMiddleware implements response caching with Redis. Reads under
// the configured prefix are cached; any write under the same prefix
// invalidates all cached entries so a saved edit is visible on the
// next list reload.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil {
			return c.Next()
		}

		if !strings.HasPrefix(c.Path(), config.PathPrefix) {
			return c.Next()
		}

		ctx := context.Background()

		if !isMethodCacheable(c.Method(), config.CacheableMethods) {
			err := c.Next()
			if c.Response().StatusCode() < 500 {
				if invErr := InvalidateCache(redisClient, "cache:*"); invErr != nil {
					logger.Logger.Warn().
						Err(invErr).
						Str("path", c.Path()).
						Msg("Failed to invalidate cache after write")
				}
			}
			return err
		}

		cacheKey := generateCacheKey(c)

		cachedResponse, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cachedResponse) > 0 {
			logger.Logger.Debug().
				Str("path", c.Path()).
				Str("cache_key", cacheKey).
				Msg("Cache hit")

			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cachedResponse)
		}

		logger.Logger.Debug().
			Str("path", c.Path()).
			Str("cache_key", cacheKey).
			Msg("Cache miss")

		err = c.Next()

		statusCode := c.Response().StatusCode()
		if isStatusCacheable(statusCode, config.CacheableStatus) {
			responseBody := c.Response().Body()

			ttl := config.DefaultTTL
			if err := redisClient.Set(ctx, cacheKey, responseBody, ttl).Err(); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
			} else {
				logger.Logger.Debug().
					Str("path", c.Path()).
					Str("cache_key", cacheKey).
					Dur("ttl", ttl).
					Int("size", len(responseBody)).
					Msg("Response cached")
			}

			c.Set("X-Cache", "MISS")
		}

		return err
	}
}

// generateCacheKey generates a unique cache key for the request
func generateCacheKey(c *fiber.Ctx) string {
	keyComponents := fmt.Sprintf("%s:%s:%s",
		c.Method(),
		c.Path(),
		string(c.Request().URI().QueryString()),
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

// isMethodCacheable checks if HTTP method is cacheable
func isMethodCacheable(method string, cacheableMethods []string) bool {
	for _, m := range cacheableMethods {
		if m == method {
			return true
		}
	}
	return false
}

// isStatusCacheable checks if status code is cacheable
func isStatusCacheable(status int, cacheableStatus []int) bool {
	for _, s := range cacheableStatus {
		if s == status {
			return true
		}
	}
	return false
}

// InvalidateCache invalidates cache for a specific pattern
func InvalidateCache(redisClient *redis.Client, pattern string) error {
	ctx := context.Background()

	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}

		logger.Logger.Info().
			Int("count", len(keys)).
			Str("pattern", pattern).
			Msg("Cache invalidated")
	}

	return nil
}

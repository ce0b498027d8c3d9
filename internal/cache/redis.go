// Package cache is an optional Redis-backed read cache for the
// analytics snapshot. Without a Redis URL the service runs uncached.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"taskboard/internal/core/model"
)

const (
	analyticsKey = "analytics:snapshot"
	analyticsTTL = 30 * time.Second
)

var (
	redisClient *redis.Client
	enabled     bool
)

// Initialize sets up the Redis connection if a URL is provided.
func Initialize(redisURL string) {
	if redisURL == "" {
		log.Println("Redis URL not provided, analytics caching disabled")
		enabled = false
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v, analytics caching disabled", err)
		enabled = false
		return
	}

	redisClient = redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v, analytics caching disabled", err)
		enabled = false
		return
	}

	enabled = true
	log.Println("Redis analytics cache initialized")
}

// Close closes the Redis connection.
func Close() {
	if redisClient != nil {
		redisClient.Close()
	}
}

// GetAnalytics returns the cached snapshot, or nil on miss or when
// caching is disabled.
func GetAnalytics(ctx context.Context) *model.AnalyticsSnapshot {
	if !enabled {
		return nil
	}

	data, err := redisClient.Get(ctx, analyticsKey).Bytes()
	if err != nil {
		return nil
	}

	var snapshot model.AnalyticsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil
	}
	return &snapshot
}

// SetAnalytics stores the snapshot for a short TTL. Cache failures are
// swallowed; the snapshot was already computed from the store.
func SetAnalytics(ctx context.Context, snapshot *model.AnalyticsSnapshot) {
	if !enabled {
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	redisClient.Set(ctx, analyticsKey, data, analyticsTTL)
}

// InvalidateAnalytics drops the cached snapshot after a board mutation.
func InvalidateAnalytics(ctx context.Context) {
	if !enabled {
		return
	}
	redisClient.Del(ctx, analyticsKey)
}

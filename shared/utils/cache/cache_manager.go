package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"orgcatalog-backend/shared/config"
)

type CacheManager struct {
	client *redis.Client
	ctx    context.Context
}

// ActivityTreeCacheData wraps a cached activity tree response
type ActivityTreeCacheData struct {
	Tree     json.RawMessage `json:"tree"`
	CachedAt time.Time       `json:"cached_at"`
}

var globalCacheManager *CacheManager

// InitCacheManager initializes the global cache manager
func InitCacheManager() error {
	cfg := config.GetConfig()

	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		log.Printf("❌ Invalid Redis DB number: %s, using default 0", cfg.RedisDB)
		redisDB = 0
	}

	// Create Redis client
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	globalCacheManager = &CacheManager{
		client: client,
		ctx:    ctx,
	}

	log.Printf("✅ Redis Cache Manager initialized successfully - %s:%s DB:%d",
		cfg.RedisHost, cfg.RedisPort, redisDB)

	return nil
}

// GetCacheManager returns the global cache manager instance
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		if err := InitCacheManager(); err != nil {
			log.Printf("❌ Failed to initialize cache manager: %v", err)
			return nil
		}
	}
	return globalCacheManager
}

// GenerateActivityTreeKey generates a cache key for a built activity tree.
// rootID is 0 for the full forest.
func GenerateActivityTreeKey(rootID, maxDepth int) string {
	return fmt.Sprintf("catalog:activity-tree:root:%d:depth:%d", rootID, maxDepth)
}

// activityTreeCacheTTL returns the configured TTL for cached trees
func activityTreeCacheTTL() time.Duration {
	return time.Duration(config.GetConfig().GetActivityCacheTTLMinutes()) * time.Minute
}

// SetActivityTreeCache caches a built activity tree
func (cm *CacheManager) SetActivityTreeCache(rootID, maxDepth int, tree interface{}) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	key := GenerateActivityTreeKey(rootID, maxDepth)

	treeJSON, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal activity tree: %v", err)
	}

	data := ActivityTreeCacheData{
		Tree:     treeJSON,
		CachedAt: time.Now(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %v", err)
	}

	ttl := activityTreeCacheTTL()
	if err := cm.client.Set(cm.ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %v", err)
	}

	log.Printf("🔄 Activity tree cached: %s (TTL: %v)", key, ttl)
	return nil
}

// GetActivityTreeCache retrieves a cached activity tree
func (cm *CacheManager) GetActivityTreeCache(rootID, maxDepth int) (json.RawMessage, bool) {
	if cm == nil || cm.client == nil {
		return nil, false
	}

	key := GenerateActivityTreeKey(rootID, maxDepth)

	result, err := cm.client.Get(cm.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			log.Printf("🔍 Cache miss: %s", key)
			return nil, false
		}
		log.Printf("❌ Cache error: %v", err)
		return nil, false
	}

	var data ActivityTreeCacheData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		log.Printf("❌ Failed to unmarshal cache data: %v", err)
		return nil, false
	}

	log.Printf("✅ Cache hit: %s (Age: %v)", key, time.Since(data.CachedAt))
	return data.Tree, true
}

// InvalidateActivityTrees invalidates all cached activity trees
func (cm *CacheManager) InvalidateActivityTrees() error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	pattern := "catalog:activity-tree:*"
	return cm.invalidateByPattern(pattern)
}

// invalidateByPattern invalidates cache entries matching a pattern
func (cm *CacheManager) invalidateByPattern(pattern string) error {
	iter := cm.client.Scan(cm.ctx, 0, pattern, 0).Iterator()
	var keys []string

	for iter.Next(cm.ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %v", err)
	}

	if len(keys) > 0 {
		err := cm.client.Del(cm.ctx, keys...).Err()
		if err != nil {
			return fmt.Errorf("failed to delete keys: %v", err)
		}
		log.Printf("🗑️  Cache invalidated: %d keys matching pattern '%s'", len(keys), pattern)
	} else {
		log.Printf("🔍 No cache keys found for pattern: %s", pattern)
	}

	return nil
}

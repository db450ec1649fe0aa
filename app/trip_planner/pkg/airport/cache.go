package airport

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
)

// Cache 机场代码缓存，城市名为 key
type Cache interface {
	Get(ctx context.Context, city string) (string, bool)
	Set(ctx context.Context, city, code string) error
}

type memoryEntry struct {
	code    string
	expires time.Time
}

// MemoryCache 进程内缓存
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache 创建进程内缓存，ttl <= 0 表示永不过期
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get implements Cache
func (c *MemoryCache) Get(_ context.Context, city string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[city]
	if !ok {
		return "", false
	}
	if !e.expires.IsZero() && c.now().After(e.expires) {
		return "", false
	}
	return e.code, true
}

// Set implements Cache
func (c *MemoryCache) Set(_ context.Context, city, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memoryEntry{code: code}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	c.entries[city] = e
	return nil
}

const redisKeyPrefix = "trip_planner:airport:"

// RedisCache 基于 Redis 的共享缓存
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache 创建 Redis 缓存
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// NewRedisClient 按地址与库号创建 Redis 客户端
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Get implements Cache，Redis 不可用时视为未命中
func (c *RedisCache) Get(ctx context.Context, city string) (string, bool) {
	code, err := c.client.Get(ctx, redisKeyPrefix+city).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warnf("读取机场代码缓存失败 [%s]: %v", city, err)
		}
		return "", false
	}
	return code, true
}

// Set implements Cache
func (c *RedisCache) Set(ctx context.Context, city, code string) error {
	return c.client.Set(ctx, redisKeyPrefix+city, code, c.ttl).Err()
}

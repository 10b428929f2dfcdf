package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/techfood-api/internal/models"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart"

// CartStore 按会话标识存取购物车快照
// Load 对不存在的会话返回空购物车；Save 后 Load 必须还原同一购物车。
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisCartStore Redis 实现（JSON 快照 + 会话 TTL）
type RedisCartStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCartStore 创建 Redis 购物车存储
func NewRedisCartStore(client *redis.Client, prefix string, ttl time.Duration) *RedisCartStore {
	if strings.TrimSpace(prefix) == "" {
		prefix = "tf"
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisCartStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisCartStore) key(sessionID string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, cartKeyPrefix, sessionID)
}

// Load 读取会话购物车（不存在时返回空购物车）
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	if s.client == nil {
		return nil, fmt.Errorf("cart store redis client is nil")
	}
	val, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return models.NewCart(), nil
	}
	if err != nil {
		return nil, err
	}
	cart := models.NewCart()
	if err := json.Unmarshal([]byte(val), cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Save 写入会话购物车快照并续期 TTL
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	if s.client == nil {
		return fmt.Errorf("cart store redis client is nil")
	}
	if cart == nil {
		cart = models.NewCart()
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sessionID), payload, s.ttl).Err()
}

// Clear 删除会话购物车
func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	if s.client == nil {
		return fmt.Errorf("cart store redis client is nil")
	}
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// MemoryCartStore 内存实现（Redis 未启用时与测试使用）
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewMemoryCartStore 创建内存购物车存储
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]byte)}
}

// Load 读取会话购物车（不存在时返回空购物车）
func (s *MemoryCartStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.mu.RLock()
	payload, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if !ok {
		return models.NewCart(), nil
	}
	cart := models.NewCart()
	if err := json.Unmarshal(payload, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Save 写入会话购物车快照
func (s *MemoryCartStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	if cart == nil {
		cart = models.NewCart()
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[sessionID] = payload
	s.mu.Unlock()
	return nil
}

// Clear 删除会话购物车
func (s *MemoryCartStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}

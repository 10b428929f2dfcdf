package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/techfood-api/internal/config"

	"github.com/redis/go-redis/v9"
)

// 平台级 Redis 连接，购物车会话、登录限流与菜单缓存共用同一实例。
var (
	client    *redis.Client
	keyPrefix string
	active    bool
)

// InitRedis 按配置建立 Redis 连接；未启用时各缓存入口自动降级为直查数据库。
func InitRedis(cfg *config.RedisConfig) error {
	active = false
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	keyPrefix = strings.TrimSpace(cfg.Prefix)
	if keyPrefix == "" {
		keyPrefix = "tf"
	}
	client = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	active = true
	return nil
}

// Enabled Redis 是否可用
func Enabled() bool {
	return active && client != nil
}

// Client 暴露底层客户端，供购物车存储与限流计数器复用连接。
func Client() *redis.Client {
	if !Enabled() {
		return nil
	}
	return client
}

// GetJSON 读取 JSON 缓存，未命中返回 (false, nil)。
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	raw, err := client.Get(ctx, prefixed(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化并写入缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, prefixed(key), raw, ttl).Err()
}

// Del 失效指定缓存键
func Del(ctx context.Context, key string) error {
	if !Enabled() {
		return nil
	}
	return client.Del(ctx, prefixed(key)).Err()
}

func prefixed(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return keyPrefix
	}
	return keyPrefix + ":" + key
}

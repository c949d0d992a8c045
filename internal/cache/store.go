package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/salon-next/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "salon"

// store 当前生效的 Redis 连接；为 nil 时所有读写都是空操作
type store struct {
	client *redis.Client
	prefix string
}

var active atomic.Pointer[store]

// Connect 按配置建立连接并探活；未启用时保持空操作模式
// 探活失败仍保留客户端，读写失败由调用方按缓存未命中处理
func Connect(ctx context.Context, cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		active.Store(nil)
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
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	Use(client, cfg.Prefix)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return client.Ping(pingCtx).Err()
}

// Use 注入现成的客户端，测试中配合 miniredis 使用
func Use(client *redis.Client, prefix string) {
	if client == nil {
		active.Store(nil)
		return
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	active.Store(&store{client: client, prefix: prefix})
}

// Close 断开连接并回到空操作模式
func Close() error {
	s := active.Swap(nil)
	if s == nil {
		return nil
	}
	return s.client.Close()
}

// Client 供限流等需要原生命令的组件使用，未启用时为 nil
func Client() *redis.Client {
	if s := active.Load(); s != nil {
		return s.client
	}
	return nil
}

func (s *store) key(key string) string {
	return s.prefix + ":" + strings.TrimSpace(key)
}

// GetJSON 读取并反序列化，未命中返回 false
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	s := active.Load()
	if s == nil {
		return false, nil
	}
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
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

// SetJSON 序列化后写入
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s := active.Load()
	if s == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(key), raw, ttl).Err()
}

func Del(ctx context.Context, key string) error {
	s := active.Load()
	if s == nil {
		return nil
	}
	return s.client.Del(ctx, s.key(key)).Err()
}

package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/salon-next/internal/http/response"
	"github.com/salon-next/internal/i18n"
	"github.com/salon-next/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 从请求中取限流维度，返回空串时回落到客户端 IP
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口：WindowSeconds 内最多 MaxRequests 次
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	MessageKey    string
}

func (r RateLimitRule) active() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

func (r RateLimitRule) key(dimension string) string {
	if r.Prefix == "" {
		return dimension
	}
	return r.Prefix + ":" + dimension
}

var errUnexpectedReply = errors.New("unexpected rate limit reply")

// KEYS[1] 计数键，ARGV[1] 窗口秒数；返回 {计数, 剩余秒数}
var windowCounter = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return {n, redis.call("TTL", KEYS[1])}
`)

// hit 计数一次并返回是否放行与建议等待秒数
func (r RateLimitRule) hit(ctx context.Context, client *redis.Client, key string) (bool, int, error) {
	reply, err := windowCounter.Run(ctx, client, []string{key}, r.WindowSeconds).Int64Slice()
	if err != nil {
		return true, 0, err
	}
	if len(reply) != 2 {
		return true, 0, errUnexpectedReply
	}
	if reply[0] <= int64(r.MaxRequests) {
		return true, 0, nil
	}
	wait := int(reply[1])
	if wait < 1 {
		wait = r.WindowSeconds
	}
	return false, wait, nil
}

// RateLimitMiddleware 超限返回 429 业务码与 Retry-After；Redis 故障时放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	if client == nil || !rule.active() {
		return func(c *gin.Context) { c.Next() }
	}
	msgKey := rule.MessageKey
	if msgKey == "" {
		msgKey = "error.too_many_requests"
	}
	return func(c *gin.Context) {
		dimension := c.ClientIP()
		if keyFunc != nil {
			if v := strings.TrimSpace(keyFunc(c)); v != "" {
				dimension = v
			}
		}
		key := rule.key(dimension)

		allowed, wait, err := rule.hit(c.Request.Context(), client, key)
		if err != nil {
			logger.Warnw("rate_limit_unavailable", "key", key, "error", err)
		}
		if allowed {
			c.Next()
			return
		}
		c.Header("Retry-After", strconv.Itoa(wait))
		response.Error(c, response.CodeTooManyRequests, i18n.Sprintf(i18n.ResolveLocale(c), msgKey, wait))
		c.Abort()
	}
}

// KeyByIP 按客户端 IP 限流
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 以 JSON 请求体中的字段（小写）加 IP 作为维度，请求体读取后原样放回
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(peekJSONString(c, field))
		if value == "" {
			return c.ClientIP()
		}
		return value + "|" + c.ClientIP()
	}
}

func peekJSONString(c *gin.Context, field string) string {
	if c.Request == nil || c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if json.Unmarshal(raw, &payload) != nil {
		return ""
	}
	var text string
	if json.Unmarshal(payload[field], &text) != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

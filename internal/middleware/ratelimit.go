package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/louis5103/st-booking-system/internal/config"
)

// tokenBucketScript refills and drains a per-key bucket atomically.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_s = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'refilled_ms')
local tokens = tonumber(state[1])
local refilled = tonumber(state[2])
if tokens == nil or refilled == nil then
  tokens = capacity
  refilled = now_ms
end

local elapsed = now_ms - refilled
if elapsed > 0 then
  local steps = math.floor(elapsed / interval_ms)
  if steps > 0 then
    tokens = math.min(capacity, tokens + steps * refill)
    refilled = refilled + steps * interval_ms
  end
end

local allowed = 0
local retry_ms = 0
if tokens > 0 then
  allowed = 1
  tokens = tokens - 1
else
  retry_ms = interval_ms - (now_ms - refilled)
  if retry_ms < 0 then retry_ms = 0 end
end

redis.call('HMSET', key, 'tokens', tokens, 'refilled_ms', refilled)
redis.call('EXPIRE', key, ttl_s)
return {allowed, tokens, retry_ms}
`)

// NewTokenBucket limits requests per client ip + user + route using a
// Redis token bucket. Redis errors fail open so an outage never blocks
// the editor.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rateKey(cfg.Prefix, c)

			res, err := tokenBucketScript.Run(
				c.Request().Context(), rdb, []string{key},
				time.Now().UnixMilli(),
				cfg.Capacity,
				cfg.RefillTokens,
				cfg.RefillInterval.Milliseconds(),
				int64(cfg.TTL/time.Second),
			).Int64Slice()
			if err != nil || len(res) != 3 {
				return next(c)
			}
			allowed, remaining, retryMs := res[0] == 1, res[1], res[2]

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if !allowed {
				secs := (retryMs + 999) / 1000
				c.Response().Header().Set("Retry-After", strconv.FormatInt(secs, 10))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":       "too_many_requests",
					"retry_after": secs,
				})
			}
			return next(c)
		}
	}
}

func rateKey(prefix string, c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	uid := "anon"
	if id := UserID(c); id > 0 {
		uid = strconv.FormatUint(id, 10)
	}
	return fmt.Sprintf("%s:%s:%s:%s %s", prefix, ip, uid, c.Request().Method, c.Path())
}

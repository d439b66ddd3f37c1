package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/louis5103/st-booking-system/internal/config"
)

// cachedResponse is the JSON envelope stored in Redis for a cached GET.
// Body is raw bytes; encoding/json base64s it transparently.
type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// bodyRecorder tees the response body into a buffer up to limit bytes.
// Oversized responses are passed through but never cached.
type bodyRecorder struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	written  int
	limit    int
	overflow bool
}

func (br *bodyRecorder) WriteHeader(code int) {
	br.status = code
	br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
	br.written += len(b)
	if br.written > br.limit {
		br.overflow = true
	} else {
		br.buf.Write(b)
	}
	return br.ResponseWriter.Write(b)
}

// CacheKey builds the Redis key for a request path. Exported so the
// layout save handler can evict a venue's cached document after writes.
func CacheKey(prefix, path string) string {
	return prefix + ":" + path
}

// NewRedisCache caches successful GET responses, replaying status,
// headers and body on a hit. X-Cache reports HIT or MISS.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := CacheKey(cfg.Prefix, c.Request().URL.Path)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cr cachedResponse
				if json.Unmarshal(raw, &cr) == nil && cr.Status != 0 {
					for k, vals := range cr.Header {
						if strings.EqualFold(k, "Content-Length") {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(cr.Status)
					_, werr := c.Response().Write(cr.Body)
					return werr
				}
			}

			br := &bodyRecorder{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          cfg.MaxBodyBytes,
			}
			c.Response().Writer = br
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if br.status == http.StatusOK && !br.overflow {
				hdr := make(http.Header, len(c.Response().Header()))
				for k, vals := range c.Response().Header() {
					hdr[k] = append([]string(nil), vals...)
				}
				payload, err := json.Marshal(cachedResponse{
					Status: br.status,
					Header: hdr,
					Body:   br.buf.Bytes(),
				})
				if err == nil {
					// Detached context: the request may already be done.
					_ = rdb.SetEx(context.Background(), key, payload, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}

package middleware

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/classroom-booking/internal/config"
	"github.com/iliyamo/classroom-booking/internal/store"
)

// cachedResponse is the envelope stored in Redis for a cache hit.  The body
// marshals as base64 inside the JSON envelope.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter tees the response into a buffer while forwarding it to the
// client so a successful response can be stored after the handler ran.
type captureWriter struct {
	http.ResponseWriter
	status int
	body   []byte
}

func (w *captureWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// cacheKey derives a stable key from route and raw query under the
// configured prefix.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

// NewRedisCache caches successful GET responses in Redis for the configured
// TTL.  Entries are additionally purged whenever a collection change signal
// fires (see InvalidateOnChange), so the TTL only bounds staleness when the
// signal is lost.  With caching disabled or no Redis client the middleware
// is a passthrough.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)

			if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				var hit cachedResponse
				if json.Unmarshal(raw, &hit) == nil {
					return c.Blob(hit.Status, hit.ContentType, hit.Body)
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK {
				entry := cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.body,
				}
				if raw, err := json.Marshal(entry); err == nil {
					if err := rdb.Set(c.Request().Context(), key, raw, ttl).Err(); err != nil {
						log.Printf("cache: store failed for %s: %v", c.Path(), err)
					}
				}
			}
			return nil
		}
	}
}

// InvalidateOnChange watches both collection change channels and purges the
// cache namespace on every signal, so cached reads never outlive a mutation
// by more than one scheduling turn.  It returns immediately; the watchers
// run until ctx is cancelled.
func InvalidateOnChange(ctx context.Context, kv store.KeyValue, rdb *redis.Client, prefix string) {
	if rdb == nil {
		return
	}
	for _, channel := range []string{store.BookingsChannel, store.ClassroomsChannel} {
		ticks, err := kv.Watch(ctx, channel)
		if err != nil {
			log.Printf("cache: watch %s failed, invalidation disabled for it: %v", channel, err)
			continue
		}
		go func(channel string, ticks <-chan struct{}) {
			for range ticks {
				purgePrefix(ctx, rdb, prefix)
			}
		}(channel, ticks)
	}
}

// purgePrefix deletes every key in the cache namespace.
func purgePrefix(ctx context.Context, rdb *redis.Client, prefix string) {
	iter := rdb.Scan(ctx, 0, prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("cache: purge %s failed: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache: scan failed: %v", err)
	}
}

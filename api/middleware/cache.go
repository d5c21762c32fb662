package middleware

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krishvsoni/suno/internal/services/cache"
)

// CacheConfig holds configuration for the response cache
type CacheConfig struct {
	Store     cache.Store
	TTL       time.Duration
	TTLByPath map[string]time.Duration
}

// recorder keeps a copy of the body written by the handler
type recorder struct {
	gin.ResponseWriter
	body []byte
}

func (w *recorder) Write(data []byte) (int, error) {
	w.body = append(w.body, data...)
	return w.ResponseWriter.Write(data)
}

func (w *recorder) WriteString(s string) (int, error) {
	w.body = append(w.body, s...)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves repeated GET requests from the store. Only 200
// responses are kept, so validation and upstream errors always reach the
// handler again.
func ResponseCache(cfg CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		if bypass(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		key := Key(c.Request)
		ctx := c.Request.Context()

		if entry, ok := cfg.Store.Get(ctx, key); ok {
			c.Header("X-Cache", "HIT")
			c.Header("Age", strconv.Itoa(int(time.Since(entry.StoredAt).Seconds())))
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")
		w := &recorder{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if w.Status() != http.StatusOK || len(w.body) == 0 {
			return
		}

		cfg.Store.Set(ctx, key, &cache.Entry{
			Status:      http.StatusOK,
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body,
			StoredAt:    time.Now(),
		}, cfg.ttlFor(c.Request.URL.Path))
	}
}

func (cfg CacheConfig) ttlFor(path string) time.Duration {
	if ttl, ok := cfg.TTLByPath[path]; ok {
		return ttl
	}
	return cfg.TTL
}

// Key builds the cache key for a request. Query values are trimmed so
// "blue" and " blue " share an entry.
func Key(req *http.Request) string {
	params := url.Values{}
	for k, values := range req.URL.Query() {
		for _, v := range values {
			params.Add(k, strings.TrimSpace(v))
		}
	}
	return "http:" + req.URL.Path + "?" + params.Encode()
}

// bypass reports whether the client asked for a fresh response
func bypass(req *http.Request) bool {
	for _, directive := range strings.Split(strings.ToLower(req.Header.Get("Cache-Control")), ",") {
		switch strings.TrimSpace(directive) {
		case "no-cache", "no-store", "max-age=0":
			return true
		}
	}
	return req.Header.Get("Pragma") == "no-cache"
}

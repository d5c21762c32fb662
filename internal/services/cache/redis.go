package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// Redis stores entries in a shared Redis so several proxies reuse responses
type Redis struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
	logger     *log.Logger
}

// NewRedis connects to the server at url (redis://host:port/db). A nil
// logger discards write failures.
func NewRedis(url, prefix string, defaultTTL time.Duration, logger *log.Logger) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Redis{
		client:     redis.NewClient(opt),
		prefix:     prefix,
		defaultTTL: defaultTTL,
		logger:     logger,
	}, nil
}

// Ping checks the connection
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get treats any Redis failure as a miss
func (r *Redis) Get(ctx context.Context, key string) (*Entry, bool) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Debug("cache read failed", "key", key, "err", err)
		}
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

func (r *Redis) Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) {
	if entry == nil {
		return
	}
	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	data, err := json.Marshal(entry)
	if err != nil {
		r.logger.Warn("failed to encode cache entry", "key", key, "err", err)
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, data, ttl).Err(); err != nil {
		r.logger.Warn("failed to cache response", "key", key, "err", err)
	}
}

// Close releases the connection pool
func (r *Redis) Close() error {
	return r.client.Close()
}

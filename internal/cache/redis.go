package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aolabi/docpipe/internal/entity"
)

const docKeyPrefix = "doc:"

// DocumentCache is a read-through cache for document views on the status
// poll path. TTLs are short; a stale read is bounded by the TTL and the
// metadata store stays the source of truth.
type DocumentCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewDocumentCache(addr, password string, ttl time.Duration, logger *slog.Logger) *DocumentCache {
	if logger == nil {
		logger = slog.Default()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &DocumentCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get returns the cached view, if any. Cache errors are soft: a miss is
// reported and the caller falls back to the repository.
func (c *DocumentCache) Get(ctx context.Context, id uuid.UUID) (*entity.Document, bool) {
	raw, err := c.rdb.Get(ctx, docKeyPrefix+id.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("document cache get failed", "doc_id", id, "error", err)
		}
		return nil, false
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.logger.Warn("document cache entry corrupt, dropping", "doc_id", id, "error", err)
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &doc, true
}

func (c *DocumentCache) Set(ctx context.Context, doc *entity.Document) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, docKeyPrefix+doc.ID.String(), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("document cache set failed", "doc_id", doc.ID, "error", err)
	}
}

func (c *DocumentCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.rdb.Del(ctx, docKeyPrefix+id.String()).Err(); err != nil {
		c.logger.Debug("document cache invalidate failed", "doc_id", id, "error", err)
	}
}

func (c *DocumentCache) Close() error {
	return c.rdb.Close()
}

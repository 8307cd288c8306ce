package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// QuoteCache keeps recently issued quotes in redis so retrieval does not
// hit the store. Entries live exactly as long as the quote itself.
type QuoteCache struct {
	client *redis.Client
}

func NewQuoteCache(cfg config.RedisConfig) *QuoteCache {
	return &QuoteCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *QuoteCache) SetQuote(ctx context.Context, q *quote.Quote) error {
	ttl := time.Until(q.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, quoteKey(q.ID), payload, ttl).Err()
}

func (c *QuoteCache) GetQuote(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	data, err := c.client.Get(ctx, quoteKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var q quote.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *QuoteCache) Close() error {
	return c.client.Close()
}

func quoteKey(id uuid.UUID) string {
	return fmt.Sprintf("cache:quote:%s", id)
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dermaplan/engine/internal/domain"
)

// Cached is a read-through Redis cache in front of another Query. Plan
// generation issues the same per-family batch repeatedly across users; the
// cache keeps those lookups off the database between catalog updates.
//
// Cache misses and Redis failures fall through to the inner Query, so a dead
// Redis degrades to direct reads instead of failing generation.
type Cached struct {
	inner Query
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCached wraps a Query with a Redis read-through cache.
func NewCached(inner Query, rdb *redis.Client, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cached{inner: inner, rdb: rdb, ttl: ttl}
}

func stepTypeKey(stepType domain.StepType, skinType domain.SkinType) string {
	return fmt.Sprintf("catalog:steptype:%s:%s", stepType, skinType)
}

// FindByStepType implements Query with a read-through cache keyed by
// (stepType, skinType).
func (c *Cached) FindByStepType(ctx context.Context, stepType domain.StepType, skinType domain.SkinType) ([]domain.CatalogProduct, error) {
	key := stepTypeKey(stepType, skinType)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var products []domain.CatalogProduct
		if err := json.Unmarshal(raw, &products); err == nil {
			return products, nil
		}
		// Corrupt entry: drop it and reload from the inner query.
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[Catalog] redis get %s: %v", key, err)
	}

	products, err := c.inner.FindByStepType(ctx, stepType, skinType)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			log.Printf("[Catalog] redis set %s: %v", key, err)
		}
	}
	return products, nil
}

// FindByIDs always hits the inner Query: id lookups are rare (alternatives
// hydration only) and not worth cache invalidation complexity.
func (c *Cached) FindByIDs(ctx context.Context, ids []string) ([]domain.CatalogProduct, error) {
	return c.inner.FindByIDs(ctx, ids)
}

// Invalidate drops every cached step-type batch. Call after catalog updates.
func (c *Cached) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "catalog:steptype:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("invalidate %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	return nil
}

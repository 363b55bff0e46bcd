package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaplan/engine/internal/domain"
)

// countingQuery wraps Memory and counts step-type lookups.
type countingQuery struct {
	inner *Memory
	calls int
}

func (c *countingQuery) FindByStepType(ctx context.Context, stepType domain.StepType, skinType domain.SkinType) ([]domain.CatalogProduct, error) {
	c.calls++
	return c.inner.FindByStepType(ctx, stepType, skinType)
}

func (c *countingQuery) FindByIDs(ctx context.Context, ids []string) ([]domain.CatalogProduct, error) {
	return c.inner.FindByIDs(ctx, ids)
}

func newCacheFixture(t *testing.T) (*Cached, *countingQuery, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	inner, err := NewMemory([]domain.CatalogProduct{
		memProduct("s1", "serum", "hydrating serum"),
		memProduct("s2", "serum", "niacinamide serum"),
	})
	require.NoError(t, err)

	counting := &countingQuery{inner: inner}
	return NewCached(counting, rdb, time.Minute), counting, mr
}

func TestCached_ReadThrough(t *testing.T) {
	cached, counting, _ := newCacheFixture(t)
	ctx := context.Background()

	first, err := cached.FindByStepType(ctx, domain.StepTypeSerum, "")
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, counting.calls)

	// Second lookup is served from Redis.
	second, err := cached.FindByStepType(ctx, domain.StepTypeSerum, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.calls, "cache hit must not touch the inner query")
}

func TestCached_KeysIncludeSkinType(t *testing.T) {
	cached, counting, _ := newCacheFixture(t)
	ctx := context.Background()

	_, err := cached.FindByStepType(ctx, domain.StepTypeSerum, domain.SkinOily)
	require.NoError(t, err)
	_, err = cached.FindByStepType(ctx, domain.StepTypeSerum, domain.SkinDry)
	require.NoError(t, err)
	assert.Equal(t, 2, counting.calls, "different skin filters are different cache entries")
}

func TestCached_CorruptEntryFallsThrough(t *testing.T) {
	cached, counting, mr := newCacheFixture(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(stepTypeKey(domain.StepTypeSerum, ""), "not-json"))

	products, err := cached.FindByStepType(ctx, domain.StepTypeSerum, "")
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 1, counting.calls, "corrupt entry must be replaced via the inner query")
}

func TestCached_DeadRedisDegradesToDirectReads(t *testing.T) {
	cached, counting, mr := newCacheFixture(t)
	ctx := context.Background()

	mr.Close()

	products, err := cached.FindByStepType(ctx, domain.StepTypeSerum, "")
	require.NoError(t, err, "a dead cache must not fail generation")
	assert.Len(t, products, 2)
	assert.Equal(t, 1, counting.calls)
}

func TestCached_Invalidate(t *testing.T) {
	cached, counting, _ := newCacheFixture(t)
	ctx := context.Background()

	_, err := cached.FindByStepType(ctx, domain.StepTypeSerum, "")
	require.NoError(t, err)
	require.NoError(t, cached.Invalidate(ctx))

	_, err = cached.FindByStepType(ctx, domain.StepTypeSerum, "")
	require.NoError(t, err)
	assert.Equal(t, 2, counting.calls, "invalidation must force a reload")
}

package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CounterCache handles Redis response counters used by the live owner
// dashboard. Counters are advisory; the authoritative count lives in the
// response collection.
type CounterCache interface {
	Increment(ctx context.Context, surveyID string) (int64, error)
	Get(ctx context.Context, surveyID string) (int64, error)
}

type counterCache struct {
	client *redis.Client
}

// NewCounterCache creates a new counter cache
func NewCounterCache(client *redis.Client) CounterCache {
	return &counterCache{client: client}
}

func (c *counterCache) counterKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:responses", surveyID)
}

func (c *counterCache) Increment(ctx context.Context, surveyID string) (int64, error) {
	return c.client.Incr(ctx, c.counterKey(surveyID)).Result()
}

func (c *counterCache) Get(ctx context.Context, surveyID string) (int64, error) {
	n, err := c.client.Get(ctx, c.counterKey(surveyID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"worksignals/internal/model"
)

// WeightsCache handles Redis operations for derived job weight maps.
// Derivation is cheap but jobs are read far more often than they change,
// so derived maps are kept warm with a TTL.
type WeightsCache interface {
	Get(ctx context.Context, jobID string) (*model.JobSignalWeightMap, error)
	Set(ctx context.Context, weights *model.JobSignalWeightMap) error
	Invalidate(ctx context.Context, jobID string) error
}

type weightsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWeightsCache creates a new weights cache
func NewWeightsCache(client *redis.Client) WeightsCache {
	return &weightsCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *weightsCache) key(jobID string) string {
	return fmt.Sprintf("job:%s:weights", jobID)
}

func (c *weightsCache) Get(ctx context.Context, jobID string) (*model.JobSignalWeightMap, error) {
	data, err := c.client.Get(ctx, c.key(jobID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var weights model.JobSignalWeightMap
	if err := json.Unmarshal([]byte(data), &weights); err != nil {
		return nil, err
	}
	return &weights, nil
}

func (c *weightsCache) Set(ctx context.Context, weights *model.JobSignalWeightMap) error {
	data, err := json.Marshal(weights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(weights.JobID), data, c.ttl).Err()
}

func (c *weightsCache) Invalidate(ctx context.Context, jobID string) error {
	return c.client.Del(ctx, c.key(jobID)).Err()
}

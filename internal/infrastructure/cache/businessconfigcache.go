package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

const (
	businessConfigKey = "tiffin:business_config"
	businessConfigTTL = 60 * time.Second
)

// BusinessConfigCache is a read-through cache in front of the config
// repository. Rule changes propagate within the TTL; cache failures fall
// back to the database so a Redis outage never blocks scheduling.
type BusinessConfigCache struct {
	client *redis.Client
	source benefit.ConfigProvider
	logger logger.Interface
}

func NewBusinessConfigCache(
	client *redis.Client,
	source benefit.ConfigProvider,
	logger logger.Interface,
) benefit.ConfigProvider {
	return &BusinessConfigCache{
		client: client,
		source: source,
		logger: logger,
	}
}

func (c *BusinessConfigCache) Get(ctx context.Context) (benefit.BusinessConfig, error) {
	data, err := c.client.Get(ctx, businessConfigKey).Bytes()
	if err == nil {
		var cfg benefit.BusinessConfig
		if err := json.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		c.logger.Warnw("failed to decode cached business config, falling back to database", "error", err)
	} else if err != redis.Nil {
		c.logger.Warnw("failed to read business config from cache", "error", err)
	}

	cfg, err := c.source.Get(ctx)
	if err != nil {
		return benefit.BusinessConfig{}, err
	}

	if data, err := json.Marshal(cfg); err == nil {
		if err := c.client.Set(ctx, businessConfigKey, data, businessConfigTTL).Err(); err != nil {
			c.logger.Warnw("failed to cache business config", "error", err)
		}
	}
	return cfg, nil
}

// Invalidate drops the cached row so the next read hits the database.
func (c *BusinessConfigCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, businessConfigKey).Err()
}

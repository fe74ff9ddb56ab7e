package report_cache_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/infra/db/redis/helpers"
	"github.com/redis/go-redis/v9"
)

type SaveReportCacheRepository struct {
	Client *redis.Client
}

func NewSaveReportCacheRepository(client *redis.Client) *SaveReportCacheRepository {
	return &SaveReportCacheRepository{
		Client: client,
	}
}

func (r *SaveReportCacheRepository) Save(key string, payload string, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	return r.Client.Set(ctx, key, payload, expiration).Err()
}

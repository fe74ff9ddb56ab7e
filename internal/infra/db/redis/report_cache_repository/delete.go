package report_cache_repository

import (
	"context"

	"github.com/controledecontas/expenses-backend/internal/infra/db/redis/helpers"
	"github.com/redis/go-redis/v9"
)

type DeleteReportCacheRepository struct {
	Client *redis.Client
}

func NewDeleteReportCacheRepository(client *redis.Client) *DeleteReportCacheRepository {
	return &DeleteReportCacheRepository{
		Client: client,
	}
}

func (r *DeleteReportCacheRepository) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	return r.Client.Del(ctx, keys...).Err()
}

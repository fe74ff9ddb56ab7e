package report_cache_repository

import (
	"context"

	"github.com/controledecontas/expenses-backend/internal/infra/db/redis/helpers"
	"github.com/redis/go-redis/v9"
)

type FindReportCacheRepository struct {
	Client *redis.Client
}

func NewFindReportCacheRepository(client *redis.Client) *FindReportCacheRepository {
	return &FindReportCacheRepository{
		Client: client,
	}
}

// Find returns the cached report payload, or "" on a miss.
func (r *FindReportCacheRepository) Find(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	value, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

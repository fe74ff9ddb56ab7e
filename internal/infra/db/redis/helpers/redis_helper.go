package helpers

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisTimeout = 5 * time.Second

func RedisHelper(connectionUrl string) *redis.Client {
	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		log.Fatalf("Error parsing Redis URL: %v", err)
		return nil
	}

	opt.PoolSize = 50
	opt.MinIdleConns = 5
	opt.ConnMaxIdleTime = 200 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Error pinging Redis: %v", err)
		return nil
	}

	log.Printf("Connected to Redis: %s", connectionUrl)

	return client
}

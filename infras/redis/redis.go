package redis

import (
	"context"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"lodge/config"
)

// New connects to Redis. A disabled or unreachable Redis yields nil; the
// cache layer degrades to a no-op in that case.
func New(config *config.Config) *goRedis.Client {
	if !config.Cache.Redis.Enable {
		log.Info().Msg("Redis disabled, caching is off")

		return nil
	}

	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Cache.Redis.Host, config.Cache.Redis.Port),
		Password: config.Cache.Redis.Password,
		DB:       config.Cache.Redis.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn().Err(err).Msg("Failed to connect to Redis, caching is off")

		return nil
	}

	log.Info().
		Int("db", config.Cache.Redis.DB).
		Str("host", config.Cache.Redis.Host).
		Str("port", config.Cache.Redis.Port).
		Msg("Connected to Redis")

	return client
}

package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// MustOpenRedis — клиент для сессий, user→session индекса и rate-limit счётчиков.
func MustOpenRedis(addr string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(err)
	}
	return rdb
}

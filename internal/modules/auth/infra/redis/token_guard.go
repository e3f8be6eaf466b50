package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const jtiPrefix = "jti:"

// LoginTokenGuard делает magic-link одноразовой: SETNX на jti с TTL токена.
// Повторный переход по той же ссылке получает false и 401.
type LoginTokenGuard struct {
	rdb *redis.Client
}

func NewLoginTokenGuard(rdb *redis.Client) *LoginTokenGuard {
	return &LoginTokenGuard{rdb: rdb}
}

func (g *LoginTokenGuard) Claim(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return g.rdb.SetNX(ctx, jtiPrefix+jti, 1, ttl).Result()
}

package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

// Limiter — fixed-window счётчик: INCR + EXPIRE на первом обращении.
// Две независимые политики собираются из одного типа с разным префиксом
// (rl: 4/10мин на общие запросы, 2fa_fail: 5/10мин на второй фактор).
type Limiter struct {
	rdb    *redis.Client
	prefix string
	points int
	window time.Duration
}

func NewLimiter(rdb *redis.Client, prefix string, points int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, prefix: prefix, points: points, window: window}
}

func (l *Limiter) key(k string) string { return l.prefix + ":" + k }

func (l *Limiter) Consume(ctx context.Context, key string) error {
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, l.key(key))
	pipe.ExpireNX(ctx, l.key(key), l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	if incr.Val() > int64(l.points) {
		return domain.ErrRateLimited
	}
	return nil
}

func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.rdb.Del(ctx, l.key(key)).Err()
}

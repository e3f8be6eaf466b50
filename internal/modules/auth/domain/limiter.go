package domain

import (
	"context"
	"errors"
	"time"
)

var ErrRateLimited = errors.New("rate_limited")

// RateLimiter — счётчик с окном на ключ (у нас ключ — IP вызывающего).
// Consume инкрементирует при каждой попытке независимо от исхода и возвращает
// ErrRateLimited, когда бюджет окна исчерпан. Reset снимает счётчик досрочно —
// вызывается только после успешной проверки второго фактора.
type RateLimiter interface {
	Consume(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// LoginTokenGuard гасит jti magic-link токена: первый Claim — true,
// повтор в пределах TTL — false.
type LoginTokenGuard interface {
	Claim(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}

package domain

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session_not_found")

type Session struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// SessionStore хранит сессии по непрозрачному ID и держит индекс email → текущий ID.
// Инвариант одной сессии: Create сначала уничтожает старую сессию этого email
// (не просто отвязывает — держатель старой cookie разлогинивается сразу),
// затем кладёт новую и переводит индекс на неё. ID всегда свежий — фиксация
// сессии не наследуется.
type SessionStore interface {
	Create(ctx context.Context, email string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
}

package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("not_found")
	ErrEmailTaken = errors.New("email_taken")
)

// User появляется в БД только после подтверждённой настройки 2FA:
// запись существует ⇔ секрет установлен.
type User struct {
	ID         string
	Name       string
	Email      string
	TOTPSecret string // base32
	CreatedAt  time.Time
}

type CreateUserParams struct {
	Name       string
	Email      string
	TOTPSecret string
}

type UserRepo interface {
	Create(ctx context.Context, p CreateUserParams) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

package pg

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.TOTPSecret, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, p domain.CreateUserParams) (*domain.User, error) {
	q := `
INSERT INTO users (name, email, twofa_secret)
VALUES ($1, LOWER($2), $3)
RETURNING id, name, email, twofa_secret, created_at`
	row := r.db.QueryRow(ctx, q, p.Name, p.Email, p.TOTPSecret)
	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation по email
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := `SELECT id, name, email, twofa_secret, created_at FROM users WHERE email = LOWER($1)`
	return scanUser(r.db.QueryRow(ctx, q, strings.ToLower(email)))
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email=LOWER($1))`, email).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

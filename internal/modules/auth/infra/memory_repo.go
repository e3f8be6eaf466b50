package infra

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

type memUserRepo struct {
	mu      sync.RWMutex
	users   map[string]*domain.User // id -> user
	byEmail map[string]string       // email -> id
}

// NewMemUserRepo — in-memory реализация для тестов и локального запуска без PG.
func NewMemUserRepo() domain.UserRepo {
	return &memUserRepo{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *memUserRepo) Create(_ context.Context, p domain.CreateUserParams) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(p.Email)
	if _, ok := r.byEmail[email]; ok {
		return nil, domain.ErrEmailTaken
	}
	u := &domain.User{
		ID:         uuid.New().String(),
		Name:       p.Name,
		Email:      email,
		TOTPSecret: p.TOTPSecret,
		CreatedAt:  time.Now().UTC(),
	}
	r.users[u.ID] = u
	r.byEmail[email] = u.ID
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[strings.ToLower(email)]
	return ok, nil
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

func TestSessionCreateAndGet(t *testing.T) {
	_, rdb := newTestRedis(t)
	s := NewSessionStore(rdb, 5*time.Minute)
	ctx := context.Background()

	sess, err := s.Create(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", got.Email)
	assert.Equal(t, sess.ID, got.ID)

	_, err = s.Get(ctx, "no-such-session")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionSingleSessionInvariant(t *testing.T) {
	_, rdb := newTestRedis(t)
	s := NewSessionStore(rdb, 5*time.Minute)
	ctx := context.Background()

	first, err := s.Create(ctx, "ann@x.com")
	require.NoError(t, err)
	second, err := s.Create(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID, "session ID must be regenerated")

	// старая сессия уничтожена целиком, не просто отвязана
	_, err = s.Get(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	got, err := s.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", got.Email)

	// чужие email не задеты
	other, err := s.Create(ctx, "bob@x.com")
	require.NoError(t, err)
	_, err = s.Get(ctx, second.ID)
	assert.NoError(t, err)
	_, err = s.Get(ctx, other.ID)
	assert.NoError(t, err)
}

func TestSessionDestroy(t *testing.T) {
	_, rdb := newTestRedis(t)
	s := NewSessionStore(rdb, 5*time.Minute)
	ctx := context.Background()

	sess, err := s.Create(ctx, "ann@x.com")
	require.NoError(t, err)

	require.NoError(t, s.Destroy(ctx, sess.ID))
	_, err = s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// идемпотентно
	assert.NoError(t, s.Destroy(ctx, sess.ID))

	// после destroy новая сессия создаётся с чистым индексом
	next, err := s.Create(ctx, "ann@x.com")
	require.NoError(t, err)
	_, err = s.Get(ctx, next.ID)
	assert.NoError(t, err)
}

func TestSessionExpiresByTTL(t *testing.T) {
	mr, rdb := newTestRedis(t)
	s := NewSessionStore(rdb, 5*time.Minute)
	ctx := context.Background()

	sess, err := s.Create(ctx, "ann@x.com")
	require.NoError(t, err)

	mr.FastForward(5*time.Minute + time.Second)
	_, err = s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLoginTokenGuardSingleUse(t *testing.T) {
	mr, rdb := newTestRedis(t)
	g := NewLoginTokenGuard(rdb)
	ctx := context.Background()

	fresh, err := g.Claim(ctx, "jti-1", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = g.Claim(ctx, "jti-1", 5*time.Minute)
	require.NoError(t, err)
	assert.False(t, fresh, "replay within TTL must be rejected")

	// после TTL токен и так просрочен, но ключ не должен жить вечно
	mr.FastForward(5*time.Minute + time.Second)
	fresh, err = g.Claim(ctx, "jti-1", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

const (
	sessionPrefix = "session:"      // session:<id> → JSON {email, created_at}
	indexPrefix   = "user_session:" // user_session:<email> → <id>
)

// createScript выполняет swap одной сессии на email атомарно: старая сессия
// удаляется целиком, индекс переводится на новую. EVAL в Redis атомарен,
// поэтому два одновременных логина одного email сериализуются и живой
// остаётся ровно одна сессия.
var createScript = redis.NewScript(`
local old = redis.call("GET", KEYS[1])
if old then
  redis.call("DEL", ARGV[4] .. old)
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
redis.call("SET", ARGV[4] .. ARGV[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// destroyScript снимает сессию и, если индекс ещё указывает на неё, индекс тоже.
var destroyScript = redis.NewScript(`
local data = redis.call("GET", KEYS[1])
if not data then
  return 0
end
redis.call("DEL", KEYS[1])
local ok, payload = pcall(cjson.decode, data)
if ok and payload["email"] then
  local ukey = ARGV[1] .. payload["email"]
  if redis.call("GET", ukey) == ARGV[2] then
    redis.call("DEL", ukey)
  end
end
return 1
`)

type sessionPayload struct {
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

// SessionStore — серверные сессии в Redis с фиксированным TTL (без продления
// по активности) и индексом email → текущая сессия.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SessionStore{rdb: rdb, ttl: ttl}
}

// Create выпускает свежий ID (никогда не переиспользует ранее выданный —
// защита от фиксации) и вытесняет предыдущую сессию email, если была.
func (s *SessionStore) Create(ctx context.Context, email string) (*domain.Session, error) {
	now := time.Now().UTC()
	sess := &domain.Session{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: now,
	}
	payload, err := json.Marshal(sessionPayload{Email: email, CreatedAt: now.Unix()})
	if err != nil {
		return nil, err
	}
	err = createScript.Run(ctx, s.rdb,
		[]string{indexPrefix + email},
		sess.ID, string(payload), s.ttl.Milliseconds(), sessionPrefix,
	).Err()
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.rdb.Get(ctx, sessionPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	var p sessionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return &domain.Session{ID: id, Email: p.Email, CreatedAt: time.Unix(p.CreatedAt, 0).UTC()}, nil
}

// Destroy идемпотентен: отсутствие сессии — не ошибка.
func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	return destroyScript.Run(ctx, s.rdb,
		[]string{sessionPrefix + id},
		indexPrefix, id,
	).Err()
}

package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid возвращается на любой невалидный токен: просроченный, битый,
// с чужой подписью или не тем purpose. Клиенту причину не различаем.
var ErrTokenInvalid = errors.New("token_invalid")

// TokenPurpose — назначение токена; каждый endpoint принимает строго своё.
type TokenPurpose string

const (
	PurposeSetup TokenPurpose = "setup"
	PurposeLogin TokenPurpose = "login"
	PurposeTwoFA TokenPurpose = "2fa"
)

// PurposeAny отключает проверку purpose (validate-2fa-token проверяет только срок).
const PurposeAny TokenPurpose = ""

type TokenClaims struct {
	Purpose TokenPurpose
	Name    string
	Email   string
	ID      string // jti, выпускается только для login-токенов
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL — срок жизни выпускаемых токенов.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// IssueSetup выпускает токен регистрации: {name, email} живут в клейме,
// пользователь в БД ещё не существует.
func (m *TokenManager) IssueSetup(name, email string) (string, error) {
	return m.sign(jwt.MapClaims{
		"purpose": string(PurposeSetup),
		"name":    name,
		"email":   email,
	})
}

// IssueLogin выпускает токен magic-link. jti уникален на выпуск — verifyLink
// гасит его, второй переход по той же ссылке не пройдёт.
func (m *TokenManager) IssueLogin(email string) (string, error) {
	return m.sign(jwt.MapClaims{
		"purpose": string(PurposeLogin),
		"email":   email,
		"jti":     uuid.New().String(),
	})
}

// IssueTwoFA выпускает токен, дающий право отправить TOTP-код.
func (m *TokenManager) IssueTwoFA(email string) (string, error) {
	return m.sign(jwt.MapClaims{
		"purpose": string(PurposeTwoFA),
		"email":   email,
	})
}

func (m *TokenManager) sign(claims jwt.MapClaims) (string, error) {
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(m.ttl).Unix()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify проверяет подпись и срок; при want != PurposeAny — ещё и назначение.
func (m *TokenManager) Verify(token string, want TokenPurpose) (*TokenClaims, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	out := &TokenClaims{}
	out.Purpose = TokenPurpose(str(claims, "purpose"))
	out.Name = str(claims, "name")
	out.Email = str(claims, "email")
	out.ID = str(claims, "jti")

	if want != PurposeAny && out.Purpose != want {
		return nil, ErrTokenInvalid
	}
	if out.Email == "" {
		return nil, ErrTokenInvalid
	}
	return out, nil
}

func str(c jwt.MapClaims, k string) string {
	s, _ := c[k].(string)
	return s
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
	"github.com/NinadWalanj/authBackend/internal/platform/notify"
	"github.com/NinadWalanj/authBackend/internal/platform/security"
)

// CookieOptions — параметры сессионной cookie. SameSite=None обязателен:
// фронтенд живёт на другом origin.
type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// Deps — всё, что нужно auth-модулю; собирается в main и в тестах.
type Deps struct {
	Users        domain.UserRepo
	Sessions     domain.SessionStore
	Limiter      domain.RateLimiter // общий, 4/10мин
	TwoFALimiter domain.RateLimiter // второй фактор, 5/10мин
	LinkGuard    domain.LoginTokenGuard
	Tokens       *security.TokenManager
	TOTP         *security.TOTPManager
	Mailer       notify.MagicLinkSender
	Log          *zap.Logger

	BackendURL string
	ClientURL  string
	Cookie     CookieOptions
}

type Module struct {
	d Deps
}

func NewModule(d Deps) *Module {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Cookie.Name == "" {
		d.Cookie.Name = "session_id"
	}
	if d.Cookie.MaxAge <= 0 {
		d.Cookie.MaxAge = 5 * time.Minute
	}
	return &Module{d: d}
}

func (m *Module) Register(r fiber.Router) {
	d := m.d
	auth := r.Group("/auth")

	// регистрация
	auth.Post("/register", RateLimit(d.Limiter, d.Log), RegisterHandler(d.Users, d.Tokens, d.Log))
	auth.Get("/setup-2fa", Setup2FAHandler(d.Tokens, d.TOTP, d.Log))
	auth.Post("/confirm-2fa-setup", RateLimit(d.TwoFALimiter, d.Log), Confirm2FASetupHandler(d.Users, d.Tokens, d.TOTP, d.TwoFALimiter, d.Log))

	// вход
	auth.Post("/login", RateLimit(d.Limiter, d.Log), LoginHandler(d.Users, d.Tokens, d.Mailer, d.BackendURL, d.Log))
	auth.Get("/verifyLink", VerifyLinkHandler(d.Tokens, d.LinkGuard, d.ClientURL, d.Log))
	auth.Post("/verify2FA", RateLimit(d.TwoFALimiter, d.Log), Verify2FAHandler(d.Users, d.Sessions, d.Tokens, d.TOTP, d.TwoFALimiter, d.Cookie, d.Log))
	auth.Post("/validate-2fa-token", ValidateTwoFATokenHandler(d.Tokens))

	// выход
	auth.Post("/logout", LogoutHandler(d.Sessions, d.Cookie, d.Log))
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

// LogoutHandler идемпотентен: cookie чистится всегда, отсутствие сессии — не
// ошибка. Упавший стор логируем и всё равно отвечаем 200 — сессия и так
// истечёт по TTL, а клиент идентификатор уже потерял.
func LogoutHandler(sessions domain.SessionStore, cookie CookieOptions, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid := c.Cookies(cookie.Name); sid != "" {
			if err := sessions.Destroy(c.Context(), sid); err != nil {
				log.Error("logout: session destroy failed", zap.Error(err))
			}
		}
		clearSessionCookie(c, cookie)
		return c.JSON(fiber.Map{"message": "Logged out successfully"})
	}
}

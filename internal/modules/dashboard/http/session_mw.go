package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

// SessionAuth пускает дальше только при живой сессии из cookie; иначе 401 без
// побочных эффектов. Email кладётся в Locals для хендлеров.
func SessionAuth(sessions domain.SessionStore, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if sid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}
		sess, err := sessions.Get(c.Context(), sid)
		if err != nil || sess.Email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}
		c.Locals("email", sess.Email)
		return c.Next()
	}
}

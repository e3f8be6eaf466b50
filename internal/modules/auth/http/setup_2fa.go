package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/platform/security"
)

type setup2FAResp struct {
	QR     string `json:"qr"`
	Base32 string `json:"base32"`
	Email  string `json:"email"`
}

// Setup2FAHandler генерирует секрет и QR по setup-токену. Секрет пока живёт
// только у клиента — в БД попадёт после подтверждения кодом.
func Setup2FAHandler(tokens *security.TokenManager, totp *security.TOTPManager, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("token")
		if token == "" {
			token = c.Get("X-Setup-Token")
		}
		if token == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Missing token",
			})
		}

		claims, err := tokens.Verify(token, security.PurposeSetup)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Session expired. Refresh the page.",
			})
		}

		enr, err := totp.Enroll(claims.Email)
		if err != nil {
			log.Error("setup-2fa: enrollment failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Session expired. Refresh the page.",
			})
		}

		return c.JSON(setup2FAResp{
			QR:     enr.QR,
			Base32: enr.Secret,
			Email:  claims.Email,
		})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
	"github.com/NinadWalanj/authBackend/internal/platform/security"
)

// VerifyLinkHandler — единственный endpoint, по которому ходит браузер, а не
// фронтенд: ответы plain-text/redirect, не JSON. Обменивает одноразовый
// login-токен на 2FA-токен и уводит на фронтенд.
func VerifyLinkHandler(
	tokens *security.TokenManager,
	guard domain.LoginTokenGuard,
	clientURL string,
	log *zap.Logger,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("token")
		if token == "" {
			return c.Status(fiber.StatusBadRequest).SendString("Token is missing")
		}

		claims, err := tokens.Verify(token, security.PurposeLogin)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString("Invalid or expired login link")
		}

		// jti гасится на весь остаток TTL: второй клик по письму не пройдёт
		fresh, err := guard.Claim(c.Context(), claims.ID, tokens.TTL())
		if err != nil {
			log.Error("verifyLink: jti claim failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).SendString("Invalid or expired login link")
		}
		if !fresh {
			return c.Status(fiber.StatusUnauthorized).SendString("Invalid or expired login link")
		}

		twoFAToken, err := tokens.IssueTwoFA(claims.Email)
		if err != nil {
			log.Error("verifyLink: 2fa token issue failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).SendString("Invalid or expired login link")
		}

		return c.Redirect(clientURL+"/2fa?token="+twoFAToken, fiber.StatusFound)
	}
}

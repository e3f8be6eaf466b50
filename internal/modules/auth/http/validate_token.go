package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NinadWalanj/authBackend/internal/platform/security"
)

type validateTokenReq struct {
	Token string `json:"token"`
}

// ValidateTwoFATokenHandler — stateless проверка для фронтенда при refresh
// страницы: токен ещё жив? Ничего не мутирует, purpose не важен.
func ValidateTwoFATokenHandler(tokens *security.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req validateTokenReq
		if err := c.BodyParser(&req); err != nil || req.Token == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Token missing",
			})
		}
		if _, err := tokens.Verify(req.Token, security.PurposeAny); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Token expired or invalid",
			})
		}
		return c.JSON(fiber.Map{"valid": true})
	}
}

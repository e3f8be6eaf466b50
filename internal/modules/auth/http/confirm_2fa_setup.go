package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
	"github.com/NinadWalanj/authBackend/internal/platform/security"
)

type confirm2FAReq struct {
	Token  string `json:"token"`
	Code   string `json:"code"`
	Base32 string `json:"base32"`
}

// Confirm2FASetupHandler — единственная точка, где появляется пользователь:
// секрет персистится только после первой успешной проверки кода.
func Confirm2FASetupHandler(
	users domain.UserRepo,
	tokens *security.TokenManager,
	totp *security.TOTPManager,
	twoFALimiter domain.RateLimiter,
	log *zap.Logger,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req confirm2FAReq
		if err := c.BodyParser(&req); err != nil || req.Token == "" || req.Code == "" || req.Base32 == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Missing required fields",
			})
		}

		claims, err := tokens.Verify(req.Token, security.PurposeSetup)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Session expired. Refresh the page.",
			})
		}

		if !totp.VerifyCode(req.Base32, req.Code) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid 2FA code",
			})
		}

		if _, err := users.Create(c.Context(), domain.CreateUserParams{
			Name:       claims.Name,
			Email:      claims.Email,
			TOTPSecret: req.Base32,
		}); err != nil {
			// повторный confirm по тому же setup-токену упирается в unique(email)
			if !errors.Is(err, domain.ErrEmailTaken) {
				log.Error("confirm-2fa-setup: user create failed", zap.Error(err))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Session expired. Refresh the page.",
			})
		}

		// успешный второй фактор возвращает полный бюджет попыток
		if err := twoFALimiter.Reset(c.Context(), c.IP()); err != nil {
			log.Warn("confirm-2fa-setup: limiter reset failed", zap.Error(err))
		}

		return c.JSON(fiber.Map{
			"message": "2FA setup complete. Kindly log in.",
		})
	}
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
	"github.com/NinadWalanj/authBackend/internal/platform/security"
)

type verify2FAReq struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

// Verify2FAHandler завершает вход: код против секрета из БД, вытеснение старой
// сессии, свежая cookie. Ответ уходит только после подтверждения стором.
func Verify2FAHandler(
	users domain.UserRepo,
	sessions domain.SessionStore,
	tokens *security.TokenManager,
	totp *security.TOTPManager,
	twoFALimiter domain.RateLimiter,
	cookie CookieOptions,
	log *zap.Logger,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req verify2FAReq
		if err := c.BodyParser(&req); err != nil || req.Token == "" || req.Code == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Missing token or 2FA code",
			})
		}

		claims, err := tokens.Verify(req.Token, security.PurposeTwoFA)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token. Refresh the page.",
			})
		}

		u, err := users.GetByEmail(c.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "User not found",
				})
			}
			log.Error("verify2FA: user lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		}

		if !totp.VerifyCode(u.TOTPSecret, req.Code) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid 2FA code",
			})
		}

		// атомарный swap: старая сессия этого email умирает вместе с cookie,
		// новая получает регенерированный ID
		sess, err := sessions.Create(c.Context(), u.Email)
		if err != nil {
			log.Error("verify2FA: session create failed", zap.Error(err), zap.String("email", u.Email))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to regenerate session",
			})
		}

		if err := twoFALimiter.Reset(c.Context(), c.IP()); err != nil {
			log.Warn("verify2FA: limiter reset failed", zap.Error(err))
		}

		setSessionCookie(c, cookie, sess.ID)

		return c.JSON(fiber.Map{
			"message":    "2FA verified successfully",
			"redirectTo": "/dashboard",
		})
	}
}

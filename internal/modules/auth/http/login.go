package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
	"github.com/NinadWalanj/authBackend/internal/platform/notify"
	"github.com/NinadWalanj/authBackend/internal/platform/security"
)

type loginReq struct {
	Email string `json:"email"`
}

// LoginHandler шлёт magic-link на почту существующего пользователя.
// 404 по неизвестному email раскрывает, что аккаунта нет — осознанный
// компромисс в пользу внятного UX.
func LoginHandler(
	users domain.UserRepo,
	tokens *security.TokenManager,
	mailer notify.MagicLinkSender,
	backendURL string,
	log *zap.Logger,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginReq
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Email) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Email is required.",
			})
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		if _, err := users.GetByEmail(c.Context(), email); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "No account found with that email.",
				})
			}
			log.Error("login: user lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to send login link. Please try again later.",
			})
		}

		token, err := tokens.IssueLogin(email)
		if err != nil {
			log.Error("login: token issue failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to send login link. Please try again later.",
			})
		}

		link := backendURL + "/api/auth/verifyLink?token=" + token
		if err := mailer.SendMagicLink(c.Context(), email, link); err != nil {
			log.Error("login: email send failed", zap.Error(err), zap.String("email", email))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to send login link. Please try again later.",
			})
		}

		return c.JSON(fiber.Map{
			"message": "Login link sent! Check your inbox.",
		})
	}
}

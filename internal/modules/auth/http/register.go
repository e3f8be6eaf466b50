package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
	"github.com/NinadWalanj/authBackend/internal/platform/security"
)

type registerReq struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

var validate = validator.New()

type registerResp struct {
	Message    string `json:"message"`
	SetupToken string `json:"setupToken"`
}

// RegisterHandler выпускает setup-токен; пользователь в БД появится только
// после подтверждения 2FA.
func RegisterHandler(users domain.UserRepo, tokens *security.TokenManager, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Name and email required",
			})
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Name and email required",
			})
		}

		exists, err := users.ExistsByEmail(c.Context(), req.Email)
		if err != nil {
			log.Error("register: user lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Registration failed",
			})
		}
		if exists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "User already exists",
			})
		}

		setupToken, err := tokens.IssueSetup(req.Name, req.Email)
		if err != nil {
			log.Error("register: token issue failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Registration failed",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(registerResp{
			Message:    "Token sent",
			SetupToken: setupToken,
		})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

// Module — защищённые маршруты; доступны только с живой сессионной cookie.
type Module struct {
	sessions   domain.SessionStore
	cookieName string
}

func NewModule(sessions domain.SessionStore, cookieName string) *Module {
	if cookieName == "" {
		cookieName = "session_id"
	}
	return &Module{sessions: sessions, cookieName: cookieName}
}

func (m *Module) Register(r fiber.Router) {
	dash := r.Group("/dashboard", SessionAuth(m.sessions, m.cookieName))
	dash.Get("/home", HomeHandler())
}

func HomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		return c.JSON(fiber.Map{"message": "Hello, " + email + "!"})
	}
}

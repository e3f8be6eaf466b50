package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/modules/auth/domain"
)

// RateLimit гейтит запрос по IP вызывающего. Ключ — осознанный компромисс:
// NAT наказывает соседей, а атакующий меняет IP; оставлено как в политике.
func RateLimit(l domain.RateLimiter, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := l.Consume(c.Context(), c.IP())
		if err == nil {
			return c.Next()
		}
		if errors.Is(err, domain.ErrRateLimited) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests. Please try again after 10 minutes.",
			})
		}
		log.Error("rate limiter unavailable", zap.Error(err), zap.String("ip", c.IP()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func setSessionCookie(c *fiber.Ctx, opts CookieOptions, sessionID string) {
	c.Cookie(&fiber.Cookie{
		Name:     opts.Name,
		Value:    sessionID,
		MaxAge:   int(opts.MaxAge.Seconds()),
		Expires:  time.Now().Add(opts.MaxAge),
		HTTPOnly: true,
		Secure:   opts.Secure,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func clearSessionCookie(c *fiber.Ctx, opts CookieOptions) {
	c.Cookie(&fiber.Cookie{
		Name:     opts.Name,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   opts.Secure,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

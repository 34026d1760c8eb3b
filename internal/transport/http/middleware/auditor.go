package middleware

import (
	"strings"

	"jpashop/internal/auditor"

	"github.com/gofiber/fiber/v2"
)

// HeaderAuditor names the request header carrying the acting user.
const HeaderAuditor = "X-Auditor"

// Auditor puts the X-Auditor header value on the request user context.
func Auditor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if name := strings.TrimSpace(c.Get(HeaderAuditor)); name != "" {
			c.SetUserContext(auditor.WithAuditor(c.UserContext(), name))
		}
		return c.Next()
	}
}

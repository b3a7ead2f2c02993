package auth

import (
	"strings"

	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const CookieAccessToken = "access_token"

// ContextMiddleware resolves the visitor's identity and mirrors it into
// c.Locals("user"). Requests without a usable token just stay anonymous;
// route guards decide what anonymous visitors may do.
func ContextMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(CookieAccessToken)
	if len(tokenString) == 0 {
		tokenString = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	}
	if len(tokenString) == 0 {
		return c.Next()
	}

	claims, err := ReadToken(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("Visitor carried an unreadable access token, treating as anonymous...")
		return c.Next()
	}

	account, err := services.FirstOrCreateAccount(claims.Subject, claims.Nick, claims.Avatar)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Locals("user", account)
	return c.Next()
}

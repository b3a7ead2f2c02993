package admin

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL, ensureAdminToken)
	{
		admin.Post("/groups", adminCreateGroup)
		admin.Put("/groups/:groupId", adminEditGroup)
		admin.Delete("/groups/:groupId", adminDeleteGroup)
		admin.Delete("/accounts/:accountId", adminDeleteAccount)
		admin.Post("/cache/flush", adminFlushIndexCache)
	}
}

func ensureAdminToken(c *fiber.Ctx) error {
	token := viper.GetString("security.admin_token")
	if len(token) == 0 {
		return fiber.NewError(fiber.StatusForbidden, "admin surface is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(c.Get("X-Admin-Token")), []byte(token)) != 1 {
		return fiber.NewError(fiber.StatusForbidden, "invalid admin token")
	}

	return c.Next()
}

package exts

import (
	"fmt"
	"net/url"

	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

const DefaultLoginPath = "/auth/login"

func LoginPath() string {
	if v := viper.GetString("auth.login_path"); len(v) > 0 {
		return v
	}
	return DefaultLoginPath
}

// LoginRequired sends anonymous visitors to the login entry with the
// original URL as the return path. Nothing past this guard runs for them, so
// an unauthenticated request can never mutate anything.
func LoginRequired(c *fiber.Ctx) error {
	if _, authenticated := c.Locals("user").(models.Account); !authenticated {
		target := fmt.Sprintf("%s?next=%s", LoginPath(), url.QueryEscape(c.OriginalURL()))
		return c.Redirect(target, fiber.StatusFound)
	}

	return c.Next()
}

package admin

import (
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func adminFlushIndexCache(c *fiber.Ctx) error {
	services.ClearIndexCache()
	return c.SendStatus(fiber.StatusOK)
}

package admin

import (
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// adminDeleteAccount is the destructive end of an upstream identity
// deletion: the mirrored account and everything it owns go away together.
func adminDeleteAccount(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("accountId", 0)

	account, err := services.GetAccountWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteAccountResources(account); err != nil {
		log.Error().Err(err).Msg("An error occurred when deleting account resources...")
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

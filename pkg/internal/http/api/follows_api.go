package api

import (
	"fmt"

	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func followAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	username := c.Params("username")

	// Following yourself is a quiet no-op, not an error
	if username == user.Name {
		return c.Redirect(fmt.Sprintf("/profile/%s", username), fiber.StatusFound)
	}

	author, err := services.GetAccountWithName(username)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	follow, err := services.FollowAccount(user, author)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(follow)
}

func unfollowAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	username := c.Params("username")

	author, err := services.GetAccountWithName(username)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, author); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

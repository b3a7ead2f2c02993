package api

import (
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listNotification(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	user := c.Locals("user").(models.Account)

	count, err := services.CountUnreadNotification(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListNotification(user, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"unread": count,
		"data":   items,
	})
}

func markNotificationAllRead(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	affected, err := services.MarkNotificationAllRead(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"affected": affected,
	})
}

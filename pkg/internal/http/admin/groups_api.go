package admin

import (
	"github.com/lirennote/chronicle/pkg/internal/http/exts"
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type groupForm struct {
	Slug        string `json:"slug" form:"slug" validate:"required,lowercase"`
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
}

func adminCreateGroup(c *fiber.Ctx) error {
	var data groupForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminEditGroup(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroupWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data groupForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if group, err = services.EditGroup(group, data.Slug, data.Title, data.Description); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminDeleteGroup(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroupWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

package api

import (
	"github.com/lirennote/chronicle/pkg/internal/files"
	"github.com/gofiber/fiber/v2"
)

func uploadAttachment(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}

	src, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer src.Close()

	object, err := files.UploadPostImage(c.Context(), header.Filename, src, header.Size)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"image": object,
	})
}

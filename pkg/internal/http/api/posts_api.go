package api

import (
	"errors"
	"fmt"

	"github.com/lirennote/chronicle/pkg/internal/database"
	"github.com/lirennote/chronicle/pkg/internal/http/exts"
	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	commentTx := services.FilterCommentWithPost(database.C, item.ID)
	count, err := services.CountComment(commentTx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	comments, err := services.ListComment(commentTx, c.QueryInt("take", 100), c.QueryInt("offset", 0))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":          item,
		"comments":      comments,
		"comment_count": count,
	})
}

type postForm struct {
	Text  string `json:"text" form:"text" validate:"required"`
	Group string `json:"group" form:"group"`
	Image string `json:"image" form:"image"`
}

func (f postForm) groupID() (*uint, error) {
	if len(f.Group) == 0 {
		return nil, nil
	}
	group, err := services.GetGroup(f.Group)
	if err != nil {
		return nil, err
	}
	return &group.ID, nil
}

func createPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	groupID, err := data.groupID()
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
	}

	item := models.Post{
		Text:     data.Text,
		Image:    data.Image,
		GroupID:  groupID,
		AuthorID: user.ID,
	}

	if item, err = services.NewPost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

// editPost hands the post back on GET and applies changes on POST; either
// way only the author gets past the redirect to the detail view.
func editPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
	}

	if c.Method() == fiber.MethodGet {
		return c.JSON(item)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	groupID, err := data.groupID()
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group: %v", err))
	}

	item.Text = data.Text
	item.Image = data.Image
	item.GroupID = groupID

	if item, err = services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func createComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post to comment: %v", err))
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var data struct {
		Text string `json:"text" form:"text" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.NewComment(user, item, data.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(comment)
}

package api

import (
	"errors"

	"github.com/lirennote/chronicle/pkg/internal/models"
	"github.com/lirennote/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// getIndexFeed serves the global feed through the response cache: within the
// cache lifespan every visitor sees the very same rendered snapshot.
func getIndexFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	raw, err := services.GetIndexFeedSnapshot(page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

func getGroupFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	slug := c.Params("slug")

	group, feed, err := services.GroupFeed(slug, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group": group,
		"count": feed.Count,
		"page":  feed.Page,
		"pages": feed.Pages,
		"data":  feed.Data,
	})
}

func getProfileFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	username := c.Params("username")

	var viewer *models.Account
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		viewer = &user
	}

	author, feed, following, err := services.ProfileFeed(username, page, viewer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	followers, err := services.CountFollower(author)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"author":         author,
		"following":      following,
		"follower_count": followers,
		"count":          feed.Count,
		"page":           feed.Page,
		"pages":          feed.Pages,
		"data":           feed.Data,
	})
}

func getFollowingFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	user := c.Locals("user").(models.Account)

	feed, err := services.FollowingFeed(user, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(feed)
}

func listFeaturedPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	take = max(1, min(take, 20))

	featured, err := services.GetFeaturedPosts(take)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	idx := lo.Map(featured, func(item models.Post, index int) uint {
		return item.ID
	})

	items, err := services.ListPost(services.FilterPostWithIDs(idx), take, 0, "created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(items)
}

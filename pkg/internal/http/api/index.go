package api

import (
	"github.com/lirennote/chronicle/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App) {
	app.Get("/", getIndexFeed)
	app.Get("/featured", listFeaturedPost)
	app.Get("/groups", listGroup)
	app.Get("/group/:slug", getGroupFeed)
	app.Get("/profile/:username", getProfileFeed)
	app.Get("/posts/:postId", getPost)

	app.Post("/create", exts.LoginRequired, createPost)
	app.All("/posts/:postId/edit", exts.LoginRequired, editPost)
	app.Post("/posts/:postId/comment", exts.LoginRequired, createComment)
	app.Post("/posts/:postId/delete", exts.LoginRequired, deletePost)

	app.Get("/follow", exts.LoginRequired, getFollowingFeed)
	app.Post("/profile/:username/follow", exts.LoginRequired, followAccount)
	app.Post("/profile/:username/unfollow", exts.LoginRequired, unfollowAccount)

	app.Get("/notifications", exts.LoginRequired, listNotification)
	app.Post("/notifications/read", exts.LoginRequired, markNotificationAllRead)

	app.Post("/attachments", exts.LoginRequired, uploadAttachment)
}

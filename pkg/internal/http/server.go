package http

import (
	"errors"

	pkg "github.com/lirennote/chronicle/pkg/internal"
	"github.com/lirennote/chronicle/pkg/internal/auth"
	"github.com/lirennote/chronicle/pkg/internal/http/admin"
	"github.com/lirennote/chronicle/pkg/internal/http/api"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func NewServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Chronicle",
		AppName:               "Chronicle v" + pkg.AppVersion,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             16 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(auth.ContextMiddleware)

	api.MapAPIs(app)
	admin.MapControllers(app, "/api/admin")

	// Anything else is the custom not found page
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	})

	return app
}

func Listen(app *fiber.App) {
	if err := app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting HTTP server.")
	}
}

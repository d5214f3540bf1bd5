package api

import (
	docs "github.com/SundayYogurt/jobboard_service/docs"
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

func RegisterSwagger(app *fiber.App) {
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		// serve the spec for whichever host and scheme the caller used
		docs.SwaggerInfo.Host = c.Hostname()
		docs.SwaggerInfo.Schemes = []string{c.Protocol()}
		return c.Next()
	}, fiberSwagger.WrapHandler)
}

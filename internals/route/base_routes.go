package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func BaseRoutes(app *fiber.App, deps Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Quran Surah API",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if deps.Store == nil || deps.Store.Len() == 0 {
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		body := fiber.Map{
			"status":         serverStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		}
		if deps.Store != nil {
			body["dataset"] = fiber.Map{
				"ayahs":       deps.Store.Len(),
				"surahs":      len(deps.Store.Chapters()),
				"translators": len(deps.Store.Translators()),
			}
		}
		return c.Status(httpStatus).JSON(body)
	})

	if deps.Metrics != nil {
		handler := promhttp.HandlerFor(deps.Metrics.Prometheus(), promhttp.HandlerOpts{})
		app.Get("/metrics", adaptor.HTTPHandler(handler))
	}
}

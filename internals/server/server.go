package server

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quranku_backend/internals/configs"
	helper "quranku_backend/internals/helpers"
	middlewares "quranku_backend/internals/middlewares"
	routes "quranku_backend/internals/route"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// New builds the Fiber app with the full middleware chain and routes.
func New(cfg configs.Config, deps routes.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.ConfigStd.Marshal,
		JSONDecoder:           sonic.ConfigStd.Unmarshal,
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          helper.FromFiberError,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	opts := middlewares.Options{
		CORSOrigins:  cfg.CORSOrigins,
		RateLimitMax: cfg.RateLimitMax,
	}
	if deps.Metrics != nil {
		opts.Metrics = deps.Metrics.Metrics
	}
	middlewares.SetupMiddlewares(app, opts)

	routes.SetupRoutes(app, deps)
	return app
}

// Run serves app on cfg.Port until SIGINT/SIGTERM, then shuts down with a
// 5 second deadline.
func Run(app *fiber.App, cfg configs.Config) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("[INFO] Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}

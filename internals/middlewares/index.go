package middlewares

import (
	"log"
	"time"

	"quranku_backend/internals/metrics"
	"quranku_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
)

type Options struct {
	CORSOrigins    string
	RateLimitMax   int
	RequestTimeout time.Duration
	Metrics        *metrics.Metrics
}

// SetupMiddlewares installs the global chain in order: recover, request id,
// access log, metrics, CORS, rate limit.
func SetupMiddlewares(app *fiber.App, opts Options) {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 5 * time.Second
	}

	app.Use(RecoveryMiddleware())
	app.Use(RequestIDMiddleware(opts.RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	if opts.Metrics != nil {
		app.Use(MetricsMiddleware(opts.Metrics))
	}
	app.Use(CorsMiddleware(opts.CORSOrigins))

	if opts.RateLimitMax > 0 {
		app.Use(GlobalRateLimiter(opts.RateLimitMax))
		log.Printf("[INFO] Rate limit: %d req/min per IP", opts.RateLimitMax)
	} else {
		log.Println("[WARN] Rate limit disabled")
	}
}

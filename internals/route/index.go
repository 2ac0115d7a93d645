// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/service"
	"quranku_backend/internals/metrics"
	routeDetails "quranku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

// Deps are the process-wide handles built once at startup.
type Deps struct {
	Store   *dataset.Store
	Service *service.SurahService
	Metrics *metrics.Registry
}

func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, deps)

	log.Println("[INFO] Mounting Quran routes...")
	routeDetails.QuranPublicRoutes(app, deps.Service, deps.Store)
}

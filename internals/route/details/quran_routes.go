package details

import (
	surahRoute "quranku_backend/internals/features/quran/surahs/route"
	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/service"

	"github.com/gofiber/fiber/v2"
)

// QuranPublicRoutes: every Quran endpoint is public and read-only.
func QuranPublicRoutes(app *fiber.App, svc *service.SurahService, store *dataset.Store) {
	surahRoute.SurahPublicRoutes(app, svc, store)
}

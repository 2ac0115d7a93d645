package route

import (
	surahController "quranku_backend/internals/features/quran/surahs/controller"
	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/service"

	"github.com/gofiber/fiber/v2"
)

// SurahPublicRoutes mounts the read-only surah endpoints. A numeric second
// segment is always an ayah number; anything else is a modifier.
func SurahPublicRoutes(router fiber.Router, svc *service.SurahService, store *dataset.Store) {
	ctrl := surahController.NewSurahController(svc, store)

	surah := router.Group("/surah")
	surah.Get("/:chapter<int>", ctrl.GetSurah)
	surah.Get("/:chapter<int>/:verse<int>", ctrl.GetSurah)
	surah.Get("/:chapter<int>/:verse<int>/:modifier", ctrl.GetSurah)
	surah.Get("/:chapter<int>/:modifier", ctrl.GetSurah)
	surah.Get("/*", ctrl.InvalidSurahPath)

	router.Get("/translators", ctrl.GetTranslators)
}

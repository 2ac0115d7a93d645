package controller

import (
	"context"
	"errors"
	"log"
	"sort"

	"quranku_backend/internals/features/quran/surahs/dto"
	"quranku_backend/internals/features/quran/surahs/service"
	helper "quranku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

// SurahGetter is the part of the service the controller calls.
type SurahGetter interface {
	Get(ctx context.Context, q dto.SurahQuery) (any, error)
}

// TranslatorLister exposes the translator columns of the loaded dataset.
type TranslatorLister interface {
	Translators() []string
	HasColumn(name string) bool
}

type SurahController struct {
	Service     SurahGetter
	Translators TranslatorLister
}

func NewSurahController(svc SurahGetter, translators TranslatorLister) *SurahController {
	return &SurahController{
		Service:     svc,
		Translators: translators,
	}
}

/* ===================== SURAH ===================== */
// GET /surah/:chapter
// GET /surah/:chapter/:verse
// GET /surah/:chapter/:modifier
// GET /surah/:chapter/:verse/:modifier
func (ctrl *SurahController) GetSurah(c *fiber.Ctx) error {
	q, err := parseSurahQuery(c)
	if err != nil {
		return err
	}

	resp, err := ctrl.Service.Get(c.UserContext(), q)
	if err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			return fiber.NewError(fiber.StatusNotFound, nf.Message)
		}
		log.Printf("[ERROR] surah query %s failed: %v", q.CacheKey(), err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load surah")
	}

	msg := "Surah retrieved"
	if _, ok := resp.(dto.SurahInfoResponse); ok {
		msg = "Surah info retrieved"
	}
	return helper.JsonOK(c, msg, resp)
}

// Any /surah/* path that did not match a typed route.
func (ctrl *SurahController) InvalidSurahPath(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusBadRequest,
		"Surah ID and Ayah number must be integers: /surah/{surah_id}[/{ayah_no}][/{translator|info}]")
}

/* ===================== TRANSLATORS ===================== */
// GET /translators
func (ctrl *SurahController) GetTranslators(c *fiber.Ctx) error {
	aliases := map[string]string{}
	for alias, column := range service.LanguageAliases {
		if ctrl.Translators.HasColumn(column) {
			aliases[alias] = column
		}
	}
	translators := ctrl.Translators.Translators()
	sort.Strings(translators)

	return helper.JsonOK(c, "Translators retrieved", dto.TranslatorsResponse{
		Aliases:     aliases,
		Translators: translators,
	})
}

// parseSurahQuery reads the typed route params. Route constraints already
// guarantee :chapter and :verse are integers when present.
func parseSurahQuery(c *fiber.Ctx) (dto.SurahQuery, error) {
	chapterID, err := c.ParamsInt("chapter")
	if err != nil {
		return dto.SurahQuery{}, fiber.NewError(fiber.StatusBadRequest, "Surah ID must be an integer")
	}
	q := dto.SurahQuery{
		ChapterID: chapterID,
		Modifier:  c.Params("modifier"),
	}
	if c.Params("verse") != "" {
		verseNo, err := c.ParamsInt("verse")
		if err != nil {
			return dto.SurahQuery{}, fiber.NewError(fiber.StatusBadRequest, "Ayah number must be an integer")
		}
		q.VerseNo = &verseNo
	}
	return q, nil
}

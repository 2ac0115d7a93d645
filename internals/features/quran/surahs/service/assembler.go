package service

import (
	"quranku_backend/internals/features/quran/surahs/dto"
	"quranku_backend/internals/features/quran/surahs/model"
)

// BuildSurahInfo summarizes the whole surah of q. The first ayah carries the
// surah-level fields.
func BuildSurahInfo(q ResolvedQuery) dto.SurahInfoResponse {
	first := q.ChapterRows[0]

	ayahs := map[int]struct{}{}
	rukus := map[int]struct{}{}
	for _, r := range q.ChapterRows {
		ayahs[r.VerseNo] = struct{}{}
		rukus[r.RukuNo] = struct{}{}
	}

	period := "Madani"
	if first.IsFirstRevelationPeriod {
		period = "Makki"
	}

	return dto.SurahInfoResponse{
		SurahName:     first.ChapterName,
		TotalAyahs:    len(ayahs),
		TotalRukus:    len(rukus),
		MakkiMadani:   period,
		TartibiNumber: first.CanonicalOrderNumber,
		NuzuliNumber:  first.RevelationOrderNumber,
		SurahMeaning:  first.ChapterNameMeaning,
	}
}

// BuildSurahAyahs lists the requested ayahs. The translation is read from the
// same record as the Arabic text, so pairing always follows the ayah number.
func BuildSurahAyahs(q ResolvedQuery) dto.SurahAyahsResponse {
	resp := dto.SurahAyahsResponse{
		SurahName: q.ChapterRows[0].ChapterName,
		Ayahs:     make([]dto.AyahEntry, 0, len(q.Rows)),
	}
	for _, r := range q.Rows {
		resp.Ayahs = append(resp.Ayahs, dto.AyahEntry{
			AyaNo:       r.VerseNo,
			ArabicText:  r.ArabicText,
			Translation: translationFor(r, q.TranslationColumn),
		})
	}
	return resp
}

func translationFor(r model.VerseRecord, column string) string {
	if column == "" {
		return dto.TranslationNotAvailable
	}
	if v, ok := r.Translation(column); ok {
		return v
	}
	return dto.TranslationNotAvailable
}

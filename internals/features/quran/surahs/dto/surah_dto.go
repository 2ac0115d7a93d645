package dto

import (
	"strconv"
	"strings"
)

// Placeholder used when an ayah has no value in the requested column.
const TranslationNotAvailable = "Translation not available"

/* ===================== REQUEST ===================== */

// SurahQuery is the typed form of /surah/:chapter[/:verse][/:modifier].
// Ids are not range checked here: an id absent from the dataset, zero and
// negatives included, is a not-found answer from the resolver.
type SurahQuery struct {
	ChapterID int
	VerseNo   *int
	Modifier  string
}

// CacheKey is stable for queries that must produce the same response.
func (q SurahQuery) CacheKey() string {
	var b strings.Builder
	b.WriteString("surah:")
	b.WriteString(strconv.Itoa(q.ChapterID))
	b.WriteString(":")
	if q.VerseNo != nil {
		b.WriteString(strconv.Itoa(*q.VerseNo))
	}
	b.WriteString(":")
	b.WriteString(strings.ToLower(strings.TrimSpace(q.Modifier)))
	return b.String()
}

/* ===================== RESPONSE ===================== */

type SurahInfoResponse struct {
	SurahName     string `json:"Surah Name" yaml:"surah_name"`
	TotalAyahs    int    `json:"Total Ayahs" yaml:"total_ayahs"`
	TotalRukus    int    `json:"Total Rukus" yaml:"total_rukus"`
	MakkiMadani   string `json:"Makki/Madani" yaml:"makki_madani"`
	TartibiNumber int    `json:"Tartibi Number" yaml:"tartibi_number"`
	NuzuliNumber  int    `json:"Nuzuli Number" yaml:"nuzuli_number"`
	SurahMeaning  string `json:"Surah Meaning" yaml:"surah_meaning"`
}

type AyahEntry struct {
	AyaNo       int    `json:"AyaNo"`
	ArabicText  string `json:"Arabic Text"`
	Translation string `json:"Translation"`
}

type SurahAyahsResponse struct {
	SurahName string      `json:"Surah Name"`
	Ayahs     []AyahEntry `json:"Arabic Text with Translation"`
}

type TranslatorsResponse struct {
	Aliases     map[string]string `json:"aliases"`
	Translators []string          `json:"translators"`
}

package model

import (
	"sort"

	"gorm.io/datatypes"
)

// Source column names of the Quran dataset.
const (
	ColumnSuraID        = "SuraID"
	ColumnAyaNo         = "AyaNo"
	ColumnRukuNo        = "RukuNo"
	ColumnArabicText    = "Arabic Text"
	ColumnSurahName     = "SurahNameU"
	ColumnSurahMeaning  = "SurahNameMeaning"
	ColumnMakki         = "Makki"
	ColumnTartibiNumber = "TartibiNumber"
	ColumnNuzuliNumber  = "NuzuliNumber"
)

// Translation columns behind the fixed language aliases.
const (
	ColumnUrdu    = "Fateh Muhammad Jalandhri"
	ColumnEnglish = "Saheeh International"
)

// StructuralColumns are the non-translation columns every dataset must carry.
var StructuralColumns = []string{
	ColumnSuraID,
	ColumnAyaNo,
	ColumnRukuNo,
	ColumnArabicText,
	ColumnSurahName,
	ColumnSurahMeaning,
	ColumnMakki,
	ColumnTartibiNumber,
	ColumnNuzuliNumber,
}

func IsStructuralColumn(name string) bool {
	for _, c := range StructuralColumns {
		if c == name {
			return true
		}
	}
	return false
}

// VerseRecord is one row of the dataset. Surah-level fields are repeated on
// every ayah of the surah.
type VerseRecord struct {
	ChapterID               int
	VerseNo                 int
	RukuNo                  int
	ArabicText              string
	ChapterName             string
	ChapterNameMeaning      string
	IsFirstRevelationPeriod bool
	CanonicalOrderNumber    int
	RevelationOrderNumber   int
	Translations            map[string]string
}

// Translation returns the non-empty cell of column for this ayah.
func (r VerseRecord) Translation(column string) (string, bool) {
	v, ok := r.Translations[column]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

/* ===================== PERSISTENCE ===================== */

// QuranVerseModel is the row layout of the quran_verses table written by the
// seeder and read by the postgres dataset source.
type QuranVerseModel struct {
	QuranVerseSuraID           int               `gorm:"column:quran_verse_sura_id;primaryKey;autoIncrement:false" json:"quran_verse_sura_id"`
	QuranVerseAyaNo            int               `gorm:"column:quran_verse_aya_no;primaryKey;autoIncrement:false" json:"quran_verse_aya_no"`
	QuranVerseRukuNo           int               `gorm:"column:quran_verse_ruku_no;not null" json:"quran_verse_ruku_no"`
	QuranVerseArabicText       string            `gorm:"column:quran_verse_arabic_text;type:text;not null" json:"quran_verse_arabic_text"`
	QuranVerseSurahName        string            `gorm:"column:quran_verse_surah_name;type:text;not null" json:"quran_verse_surah_name"`
	QuranVerseSurahNameMeaning string            `gorm:"column:quran_verse_surah_name_meaning;type:text" json:"quran_verse_surah_name_meaning"`
	QuranVerseMakki            bool              `gorm:"column:quran_verse_makki;not null" json:"quran_verse_makki"`
	QuranVerseTartibiNumber    int               `gorm:"column:quran_verse_tartibi_number" json:"quran_verse_tartibi_number"`
	QuranVerseNuzuliNumber     int               `gorm:"column:quran_verse_nuzuli_number" json:"quran_verse_nuzuli_number"`
	QuranVerseTranslations     datatypes.JSONMap `gorm:"column:quran_verse_translations;type:jsonb" json:"quran_verse_translations"`
}

func (QuranVerseModel) TableName() string {
	return "quran_verses"
}

func (m QuranVerseModel) ToRecord() VerseRecord {
	tr := make(map[string]string, len(m.QuranVerseTranslations))
	for k, v := range m.QuranVerseTranslations {
		if s, ok := v.(string); ok {
			tr[k] = s
		}
	}
	return VerseRecord{
		ChapterID:               m.QuranVerseSuraID,
		VerseNo:                 m.QuranVerseAyaNo,
		RukuNo:                  m.QuranVerseRukuNo,
		ArabicText:              m.QuranVerseArabicText,
		ChapterName:             m.QuranVerseSurahName,
		ChapterNameMeaning:      m.QuranVerseSurahNameMeaning,
		IsFirstRevelationPeriod: m.QuranVerseMakki,
		CanonicalOrderNumber:    m.QuranVerseTartibiNumber,
		RevelationOrderNumber:   m.QuranVerseNuzuliNumber,
		Translations:            tr,
	}
}

func FromRecord(r VerseRecord) QuranVerseModel {
	tr := make(datatypes.JSONMap, len(r.Translations))
	for k, v := range r.Translations {
		tr[k] = v
	}
	return QuranVerseModel{
		QuranVerseSuraID:           r.ChapterID,
		QuranVerseAyaNo:            r.VerseNo,
		QuranVerseRukuNo:           r.RukuNo,
		QuranVerseArabicText:       r.ArabicText,
		QuranVerseSurahName:        r.ChapterName,
		QuranVerseSurahNameMeaning: r.ChapterNameMeaning,
		QuranVerseMakki:            r.IsFirstRevelationPeriod,
		QuranVerseTartibiNumber:    r.CanonicalOrderNumber,
		QuranVerseNuzuliNumber:     r.RevelationOrderNumber,
		QuranVerseTranslations:     tr,
	}
}

// TranslationColumns collects the sorted union of translation keys in records.
func TranslationColumns(records []VerseRecord) []string {
	seen := map[string]struct{}{}
	for _, r := range records {
		for k := range r.Translations {
			seen[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// QuranDatasetColumnModel records every translation column of the seeded
// file, including columns whose cells were all empty.
type QuranDatasetColumnModel struct {
	QuranDatasetColumnName     string `gorm:"column:quran_dataset_column_name;primaryKey;type:text" json:"quran_dataset_column_name"`
	QuranDatasetColumnPosition int    `gorm:"column:quran_dataset_column_position;not null" json:"quran_dataset_column_position"`
}

func (QuranDatasetColumnModel) TableName() string {
	return "quran_dataset_columns"
}

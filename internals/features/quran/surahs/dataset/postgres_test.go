package dataset_test

import (
	"testing"

	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func verseRow(sura, aya int, tr datatypes.JSONMap) model.QuranVerseModel {
	return model.QuranVerseModel{
		QuranVerseSuraID:       sura,
		QuranVerseAyaNo:        aya,
		QuranVerseRukuNo:       1,
		QuranVerseArabicText:   "بِسْمِ اللَّهِ",
		QuranVerseSurahName:    "الفاتحة",
		QuranVerseMakki:        true,
		QuranVerseTranslations: tr,
	}
}

func TestTableFromModels_KeepsSeededEmptyColumns(t *testing.T) {
	rows := []model.QuranVerseModel{
		verseRow(1, 1, datatypes.JSONMap{model.ColumnEnglish: "In the name of Allah"}),
		verseRow(1, 2, datatypes.JSONMap{}),
	}
	seeded := []string{model.ColumnUrdu, model.ColumnEnglish}

	tbl := dataset.TableFromModels(rows, seeded)

	want := append(append([]string(nil), model.StructuralColumns...), model.ColumnUrdu, model.ColumnEnglish)
	assert.Equal(t, want, tbl.Columns)
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, "In the name of Allah", tbl.Records[0].Translations[model.ColumnEnglish])

	store, err := dataset.NewStore(tbl)
	require.NoError(t, err)
	assert.True(t, store.HasColumn(model.ColumnUrdu))
	col, ok := store.LookupTranslator("fateh-muhammad-jalandhri")
	assert.True(t, ok)
	assert.Equal(t, model.ColumnUrdu, col)
}

func TestTableFromModels_WithoutColumnList(t *testing.T) {
	rows := []model.QuranVerseModel{
		verseRow(1, 1, datatypes.JSONMap{"Zeta": "z", model.ColumnEnglish: "e"}),
		verseRow(1, 2, datatypes.JSONMap{"Alpha": "a"}),
	}

	tbl := dataset.TableFromModels(rows, nil)

	want := append(append([]string(nil), model.StructuralColumns...), "Alpha", model.ColumnEnglish, "Zeta")
	assert.Equal(t, want, tbl.Columns)
}

func TestTableFromModels_SeededThenExtra(t *testing.T) {
	rows := []model.QuranVerseModel{
		verseRow(1, 1, datatypes.JSONMap{"Extra": "x", model.ColumnEnglish: "e"}),
	}

	tbl := dataset.TableFromModels(rows, []string{model.ColumnEnglish, model.ColumnEnglish, model.ColumnSuraID})

	want := append(append([]string(nil), model.StructuralColumns...), model.ColumnEnglish, "Extra")
	assert.Equal(t, want, tbl.Columns)
}

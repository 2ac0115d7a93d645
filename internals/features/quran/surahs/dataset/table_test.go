package dataset_test

import (
	"testing"

	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/dataset/datasettest"
	"quranku_backend/internals/features/quran/surahs/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	tbl := datasettest.Table(t)

	require.Len(t, tbl.Records, 16)
	assert.Equal(t, datasettest.Header(), tbl.Columns)

	first := tbl.Records[0]
	assert.Equal(t, 1, first.ChapterID)
	assert.Equal(t, 1, first.VerseNo)
	assert.Equal(t, "الفاتحة", first.ChapterName)
	assert.Equal(t, "The Opening", first.ChapterNameMeaning)
	assert.True(t, first.IsFirstRevelationPeriod)
	assert.Equal(t, 1, first.CanonicalOrderNumber)
	assert.Equal(t, 5, first.RevelationOrderNumber)

	v, ok := first.Translation(model.ColumnEnglish)
	assert.True(t, ok)
	assert.Equal(t, "In the name of Allah, the Entirely Merciful, the Especially Merciful.", v)
}

func TestParseRows_SparseTranslation(t *testing.T) {
	tbl := datasettest.Table(t)

	for _, r := range tbl.Records {
		if r.ChapterID == 114 && r.VerseNo == 3 {
			_, ok := r.Translation(model.ColumnEnglish)
			assert.False(t, ok)
			_, ok = r.Translation(model.ColumnUrdu)
			assert.True(t, ok)
			return
		}
	}
	t.Fatal("ayah 114:3 not found")
}

func TestParseRows_MissingColumns(t *testing.T) {
	_, err := dataset.ParseRows([]string{"SuraID", "AyaNo", "Arabic Text"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RukuNo")
	assert.Contains(t, err.Error(), "SurahNameU")
}

func TestParseRows_DuplicateColumn(t *testing.T) {
	header := append(datasettest.Header(), "Saheeh International")
	_, err := dataset.ParseRows(header, nil)
	assert.Error(t, err)
}

func TestParseRows_BadChapterID(t *testing.T) {
	rows := datasettest.Rows()[:1]
	rows[0][0] = ""

	_, err := dataset.ParseRows(datasettest.Header(), rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParseRows_FloatCellsAndBlankRows(t *testing.T) {
	row := append([]string(nil), datasettest.Rows()[0]...)
	row[0], row[1], row[2] = "1.0", "1.0", "1.0"

	tbl, err := dataset.ParseRows(datasettest.Header(), [][]string{row, {"", " "}, {}})
	require.NoError(t, err)
	require.Len(t, tbl.Records, 1)
	assert.Equal(t, 1, tbl.Records[0].ChapterID)

	row[1] = "1.5"
	_, err = dataset.ParseRows(datasettest.Header(), [][]string{row})
	assert.Error(t, err)
}

func TestParseRows_ShortRow(t *testing.T) {
	row := datasettest.Rows()[0][:4]

	tbl, err := dataset.ParseRows(datasettest.Header(), [][]string{row})
	require.NoError(t, err)
	require.Len(t, tbl.Records, 1)
	assert.Empty(t, tbl.Records[0].Translations)
	assert.Equal(t, "", tbl.Records[0].ChapterName)
}

func TestParseBoolish(t *testing.T) {
	for _, in := range []string{"1", "TRUE", "true", "Makki", "yes"} {
		v, err := dataset.ParseBoolish(in)
		require.NoError(t, err, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"0", "FALSE", "", "Madani", "no"} {
		v, err := dataset.ParseBoolish(in)
		require.NoError(t, err, in)
		assert.False(t, v, in)
	}
	_, err := dataset.ParseBoolish("maybe")
	assert.Error(t, err)
}

package verses

import (
	"testing"

	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/dataset/datasettest"
	"quranku_backend/internals/features/quran/surahs/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanInserts_Empty(t *testing.T) {
	records := datasettest.Table(t).Records

	rows, res := PlanInserts(nil, records)
	assert.Equal(t, Result{Inserted: 16}, res)
	require.Len(t, rows, 16)
	assert.Equal(t, 1, rows[0].QuranVerseSuraID)
	assert.Equal(t, "The Opening", rows[0].QuranVerseSurahNameMeaning)
	assert.Equal(t, "Guide us to the straight path -", rows[5].QuranVerseTranslations[model.ColumnEnglish])
}

func TestPlanInserts_SkipsExisting(t *testing.T) {
	records := datasettest.Table(t).Records
	existing := []model.QuranVerseModel{
		{QuranVerseSuraID: 1, QuranVerseAyaNo: 1},
		{QuranVerseSuraID: 114, QuranVerseAyaNo: 3},
	}

	rows, res := PlanInserts(existing, records)
	assert.Equal(t, Result{Inserted: 14, Skipped: 2}, res)
	for _, r := range rows {
		assert.False(t, r.QuranVerseSuraID == 1 && r.QuranVerseAyaNo == 1)
		assert.False(t, r.QuranVerseSuraID == 114 && r.QuranVerseAyaNo == 3)
	}
}

func TestPlanInserts_RoundTrip(t *testing.T) {
	records := datasettest.Table(t).Records

	rows, _ := PlanInserts(nil, records)
	for i, row := range rows {
		assert.Equal(t, records[i], row.ToRecord())
	}
}

func TestTranslationColumnRows(t *testing.T) {
	rows := TranslationColumnRows(datasettest.Header())

	assert.Equal(t, []model.QuranDatasetColumnModel{
		{QuranDatasetColumnName: model.ColumnUrdu, QuranDatasetColumnPosition: 0},
		{QuranDatasetColumnName: model.ColumnEnglish, QuranDatasetColumnPosition: 1},
		{QuranDatasetColumnName: datasettest.Maududi, QuranDatasetColumnPosition: 2},
	}, rows)
}

func TestTranslationColumnRows_EmptyColumnSurvivesReload(t *testing.T) {
	header := datasettest.Header()
	rows := datasettest.Rows()
	for _, r := range rows {
		r[6] = "" // Maududi column left blank everywhere
	}
	tbl, err := dataset.ParseRows(header, rows)
	require.NoError(t, err)

	planned, _ := PlanInserts(nil, tbl.Records)
	reloaded := dataset.TableFromModels(planned, columnNames(TranslationColumnRows(tbl.Columns)))

	store, err := dataset.NewStore(reloaded)
	require.NoError(t, err)
	assert.True(t, store.HasColumn(datasettest.Maududi))
	assert.Equal(t, []string{datasettest.Maududi, model.ColumnUrdu, model.ColumnEnglish}, store.Translators())
}

func columnNames(rows []model.QuranDatasetColumnModel) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.QuranDatasetColumnName)
	}
	return out
}

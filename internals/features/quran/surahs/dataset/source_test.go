package dataset_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/dataset/datasettest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_XLSX(t *testing.T) {
	path := datasettest.WriteXLSX(t, datasettest.Header(), datasettest.Rows())

	store, err := dataset.Open(context.Background(), dataset.XLSXSource{Path: path})
	require.NoError(t, err)

	assert.Equal(t, 16, store.Len())
	assert.Equal(t, []int{1, 110, 114}, store.Chapters())
	assert.Len(t, store.Translators(), 3)
}

func TestOpen_XLSXUnknownSheet(t *testing.T) {
	path := datasettest.WriteXLSX(t, datasettest.Header(), datasettest.Rows())

	_, err := dataset.Open(context.Background(), dataset.XLSXSource{Path: path, Sheet: "Nope"})
	var le *dataset.LoadError
	require.True(t, errors.As(err, &le))
}

func TestOpen_CSV(t *testing.T) {
	path := datasettest.WriteCSV(t, datasettest.Header(), datasettest.Rows())

	store, err := dataset.Open(context.Background(), dataset.CSVSource{Path: path})
	require.NoError(t, err)

	rows := store.RowsForChapterAndVerse(114, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, "الناس", rows[0].ChapterName)
}

func TestOpen_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "quran_data.xlsx")

	_, err := dataset.Open(context.Background(), dataset.XLSXSource{Path: missing})
	require.Error(t, err)

	var le *dataset.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "xlsx:"+missing, le.Source)
}

func TestOpen_EmptyDataset(t *testing.T) {
	path := datasettest.WriteCSV(t, datasettest.Header(), nil)

	_, err := dataset.Open(context.Background(), dataset.CSVSource{Path: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rows")
}

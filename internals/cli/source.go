package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quranku_backend/internals/configs"
	database "quranku_backend/internals/databases"
	"quranku_backend/internals/features/quran/surahs/dataset"
)

// sourceFor builds the dataset source named by cfg. The returned func
// releases whatever the source holds open.
func sourceFor(cfg configs.Config) (dataset.Source, func(), error) {
	noop := func() {}
	switch cfg.DatasetSource {
	case configs.SourceXLSX:
		return dataset.XLSXSource{Path: cfg.DatasetPath, Sheet: cfg.DatasetSheet}, noop, nil
	case configs.SourceCSV:
		return dataset.CSVSource{Path: cfg.DatasetPath}, noop, nil
	case configs.SourcePostgres:
		db, err := database.ConnectDB(cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		return dataset.PostgresSource{DB: db}, func() { database.Close(db) }, nil
	}
	return nil, noop, fmt.Errorf("unknown dataset source %q", cfg.DatasetSource)
}

// fileSource picks the file reader by extension.
func fileSource(path, sheet string) (dataset.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return dataset.XLSXSource{Path: path, Sheet: sheet}, nil
	case ".csv":
		return dataset.CSVSource{Path: path}, nil
	}
	return nil, fmt.Errorf("unsupported dataset file %q (want .xlsx or .csv)", path)
}

package dataset

import (
	"context"
	"fmt"
	"sort"

	"quranku_backend/internals/features/quran/surahs/model"

	"gorm.io/gorm"
)

// PostgresSource reads the quran_verses and quran_dataset_columns tables
// filled by the seeder.
type PostgresSource struct {
	DB *gorm.DB
}

func (s PostgresSource) Name() string { return "postgres:quran_verses" }

func (s PostgresSource) Load(ctx context.Context) (Table, error) {
	db := s.DB.WithContext(ctx)

	var rows []model.QuranVerseModel
	if err := db.
		Order("quran_verse_sura_id ASC, quran_verse_aya_no ASC").
		Find(&rows).Error; err != nil {
		return Table{}, fmt.Errorf("query quran_verses: %w", err)
	}

	var cols []model.QuranDatasetColumnModel
	if err := db.
		Order("quran_dataset_column_position ASC").
		Find(&cols).Error; err != nil {
		return Table{}, fmt.Errorf("query quran_dataset_columns: %w", err)
	}
	seeded := make([]string, 0, len(cols))
	for _, c := range cols {
		seeded = append(seeded, c.QuranDatasetColumnName)
	}

	return TableFromModels(rows, seeded), nil
}

// TableFromModels rebuilds a Table from stored rows. Translation columns are
// the seeded ones in their original order, followed by any other key found
// in the rows' translations.
func TableFromModels(rows []model.QuranVerseModel, seeded []string) Table {
	records := make([]model.VerseRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.ToRecord())
	}

	columns := append([]string(nil), model.StructuralColumns...)
	seen := make(map[string]struct{}, len(seeded))
	for _, c := range seeded {
		if _, dup := seen[c]; dup || model.IsStructuralColumn(c) {
			continue
		}
		seen[c] = struct{}{}
		columns = append(columns, c)
	}

	var extra []string
	for _, c := range model.TranslationColumns(records) {
		if _, ok := seen[c]; !ok {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	columns = append(columns, extra...)

	return Table{Columns: columns, Records: records}
}

package verses

import (
	"context"
	"fmt"
	"log"

	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 500

type verseKey struct {
	suraID int
	ayaNo  int
}

// Result counts what one seeding run did.
type Result struct {
	Inserted int
	Skipped  int
}

// SeedQuranVerses copies every ayah of src into quran_verses. Ayahs already
// present (same surah and ayah number) are left untouched.
func SeedQuranVerses(ctx context.Context, db *gorm.DB, src dataset.Source) (Result, error) {
	log.Println("📥 Reading dataset:", src.Name())

	t, err := src.Load(ctx)
	if err != nil {
		return Result{}, &dataset.LoadError{Source: src.Name(), Err: err}
	}
	// NewStore rejects duplicate ayahs and ambiguous translator columns.
	if _, err := dataset.NewStore(t); err != nil {
		return Result{}, &dataset.LoadError{Source: src.Name(), Err: err}
	}

	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&model.QuranVerseModel{}, &model.QuranDatasetColumnModel{}); err != nil {
		return Result{}, fmt.Errorf("migrate quran tables: %w", err)
	}

	if cols := TranslationColumnRows(t.Columns); len(cols) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cols).Error; err != nil {
			return Result{}, fmt.Errorf("insert quran_dataset_columns: %w", err)
		}
	}

	var existing []model.QuranVerseModel
	if err := db.Select("quran_verse_sura_id", "quran_verse_aya_no").Find(&existing).Error; err != nil {
		return Result{}, fmt.Errorf("read existing ayahs: %w", err)
	}

	rows, res := PlanInserts(existing, t.Records)
	if len(rows) > 0 {
		if err := db.CreateInBatches(rows, batchSize).Error; err != nil {
			return Result{}, fmt.Errorf("insert quran_verses: %w", err)
		}
	}

	log.Printf("✅ Seeded quran_verses: %d inserted, %d already present", res.Inserted, res.Skipped)
	return res, nil
}

// PlanInserts returns the rows of records missing from existing.
func PlanInserts(existing []model.QuranVerseModel, records []model.VerseRecord) ([]model.QuranVerseModel, Result) {
	seen := make(map[verseKey]struct{}, len(existing))
	for _, e := range existing {
		seen[verseKey{e.QuranVerseSuraID, e.QuranVerseAyaNo}] = struct{}{}
	}

	var (
		out []model.QuranVerseModel
		res Result
	)
	for _, r := range records {
		k := verseKey{r.ChapterID, r.VerseNo}
		if _, ok := seen[k]; ok {
			res.Skipped++
			continue
		}
		seen[k] = struct{}{}
		out = append(out, model.FromRecord(r))
		res.Inserted++
	}
	return out, res
}

// TranslationColumnRows lists the translation columns of a file header in
// header order.
func TranslationColumnRows(columns []string) []model.QuranDatasetColumnModel {
	var out []model.QuranDatasetColumnModel
	for _, c := range columns {
		if model.IsStructuralColumn(c) {
			continue
		}
		out = append(out, model.QuranDatasetColumnModel{
			QuranDatasetColumnName:     c,
			QuranDatasetColumnPosition: len(out),
		})
	}
	return out
}

package seeds

import (
	"context"

	"quranku_backend/internals/features/quran/surahs/dataset"
	verses "quranku_backend/internals/seeds/quran/verses"

	"gorm.io/gorm"
)

// RunAllSeeds loads src and writes it into the database.
func RunAllSeeds(ctx context.Context, db *gorm.DB, src dataset.Source) error {
	//* Quran
	if _, err := verses.SeedQuranVerses(ctx, db, src); err != nil {
		return err
	}
	return nil
}

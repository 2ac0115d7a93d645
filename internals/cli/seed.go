package cli

import (
	"context"
	"fmt"

	"quranku_backend/internals/configs"
	database "quranku_backend/internals/databases"
	"quranku_backend/internals/seeds"

	"github.com/spf13/cobra"
)

var (
	seedFile  string
	seedSheet string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a spreadsheet or CSV dataset into the quran_verses table",
	Long: `Read a dataset file (.xlsx or .csv) and insert its ayahs into the quran_verses
table of the configured Postgres database. Ayahs already present are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runSeed(cmd.Context(), cfg, seedFile, seedSheet)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "dataset file to import (.xlsx or .csv)")
	seedCmd.Flags().StringVar(&seedSheet, "sheet", "", "workbook sheet (default: first sheet)")
	_ = seedCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context, cfg configs.Config, file, sheet string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	src, err := fileSource(file, sheet)
	if err != nil {
		return err
	}
	if cfg.DB.Name == "" {
		return fmt.Errorf("db.name is required to seed (set DB_NAME)")
	}

	db, err := database.ConnectDB(cfg.DB)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return seeds.RunAllSeeds(ctx, db, src)
}

package cli

import (
	"context"
	"log"

	"quranku_backend/internals/configs"
	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/service"
	"quranku_backend/internals/metrics"
	routes "quranku_backend/internals/route"
	"quranku_backend/internals/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the dataset and start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServe(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (env PORT)")
	serveCmd.Flags().String("dataset-source", "", "xlsx, csv or postgres (env DATASET_SOURCE)")
	serveCmd.Flags().String("dataset-path", "", "dataset file for xlsx/csv (env DATASET_PATH)")
	serveCmd.Flags().Duration("cache-ttl", 0, "response cache TTL, 0 disables (env CACHE_TTL)")

	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("dataset_source", serveCmd.Flags().Lookup("dataset-source"))
	_ = viper.BindPFlag("dataset_path", serveCmd.Flags().Lookup("dataset-path"))
	_ = viper.BindPFlag("cache_ttl", serveCmd.Flags().Lookup("cache-ttl"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, cfg configs.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	src, closeSrc, err := sourceFor(cfg)
	if err != nil {
		return err
	}
	store, err := dataset.Open(ctx, src)
	closeSrc()
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	reg.Metrics.ObserveDataset(store.Len(), len(store.Chapters()), len(store.Translators()))

	if cfg.CacheTTL > 0 {
		log.Printf("[INFO] Response cache enabled (ttl=%s)", cfg.CacheTTL)
	}
	svc := service.NewSurahService(store, cfg.CacheTTL, reg.Metrics)

	app := server.New(cfg, routes.Deps{
		Store:   store,
		Service: svc,
		Metrics: reg,
	})
	return server.Run(app, cfg)
}

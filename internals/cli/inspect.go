package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"quranku_backend/internals/configs"
	"quranku_backend/internals/features/quran/surahs/dataset"
	"quranku_backend/internals/features/quran/surahs/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type datasetSummary struct {
	Source      string   `yaml:"source"`
	Ayahs       int      `yaml:"ayahs"`
	Surahs      int      `yaml:"surahs"`
	Translators []string `yaml:"translators"`
	Columns     []string `yaml:"columns"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [surah_id]",
	Short: "Load the dataset and print a summary",
	Long: `Load the configured dataset and print its size and translator columns as YAML.
With a surah id, print that surah's info summary instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runInspect(cmd.Context(), cmd.OutOrStdout(), cfg, args)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(ctx context.Context, w io.Writer, cfg configs.Config, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var chapterID int
	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 {
			return fmt.Errorf("surah id must be a positive integer, got %q", args[0])
		}
		chapterID = id
	}

	src, closeSrc, err := sourceFor(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	store, err := dataset.Open(ctx, src)
	if err != nil {
		return err
	}

	var out any = datasetSummary{
		Source:      src.Name(),
		Ayahs:       store.Len(),
		Surahs:      len(store.Chapters()),
		Translators: store.Translators(),
		Columns:     store.Columns(),
	}
	if chapterID > 0 {
		q, err := service.NewResolver(store).Resolve(chapterID, nil, service.ModifierInfo)
		if err != nil {
			return err
		}
		out = service.BuildSurahInfo(q)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("error marshaling summary: %w", err)
	}
	_, err = w.Write(data)
	return err
}

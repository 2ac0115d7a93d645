package cli

import (
	"errors"
	"fmt"
	"os"

	"quranku_backend/internals/configs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quranku",
	Short: "Quranku - read-only Quran surah API",
	Long: `Quranku serves surahs, ayahs and their translations from a Quran dataset
(spreadsheet, CSV or the quran_verses table) over a small JSON HTTP API.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (PORT, DATASET_PATH, DB_HOST, ...), .env included
3. Config file (--config, or ./quranku.yaml)
4. Defaults`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quranku %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./quranku.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig loads .env, registers defaults and reads the optional config file.
func initConfig() {
	configs.LoadEnv()
	configs.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("quranku")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
		return
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func loadConfig() (configs.Config, error) {
	return configs.Load(viper.GetViper())
}

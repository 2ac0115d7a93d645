package cli

import (
	"fmt"
	"io"

	"quranku_backend/internals/configs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect Quranku configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration (defaults, config file, env vars, flags). The database password is never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if f := viper.ConfigFileUsed(); f != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", f)
		}
		return writeConfig(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func writeConfig(w io.Writer, cfg configs.Config) error {
	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	_, err = w.Write(yamlData)
	return err
}

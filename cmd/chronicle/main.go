package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agenthands/chronicle/internal/config"
	"github.com/agenthands/chronicle/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "chronicle",
	Short: "Historic events of German chancellors and presidents",
	Long: `chronicle renders the heads of state of Germany since 1949 as GEDCOM
event records, from the bundled dataset and from Wikidata.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		level := "info"
		if verbose {
			level = "debug"
		}
		return initLogger(jsonLogs, level)
	},
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("config", "", "path to config.toml (default: $CHRONICLE_CONFIG or config/config.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "log as JSON")

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file if it exists and applies the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if path == "" {
		path = os.Getenv("CHRONICLE_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = "config/config.toml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		if explicit {
			return nil, err
		}
		logger.Logger.Debugw("Using built-in configuration", logger.FieldFile, path, logger.FieldError, err)
		cfg = config.Default()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

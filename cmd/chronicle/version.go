package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agenthands/chronicle/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the running and latest released version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")

		checker := version.NewChecker(cfg.Version.Current, cfg.Version.LatestURL,
			time.Duration(cfg.Version.TimeoutSeconds)*time.Second,
			time.Duration(cfg.Version.CacheHours)*time.Hour)

		info := struct {
			Version         string `json:"version"`
			Latest          string `json:"latest"`
			UpdateAvailable bool   `json:"update_available"`
		}{
			Version:         cfg.Version.Current,
			Latest:          checker.Latest(cmd.Context()),
			UpdateAvailable: checker.UpdateAvailable(cmd.Context()),
		}

		if jsonOutput {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "chronicle %s\n", info.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Latest release: %s\n", info.Latest)
		if info.UpdateAvailable {
			fmt.Fprintln(cmd.OutOrStdout(), "An update is available.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}

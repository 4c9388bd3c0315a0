package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenthands/chronicle/internal/core"
	"github.com/agenthands/chronicle/internal/driver"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print the historic event records",
	Long: `Print one GEDCOM event record per office holder, separated by blank lines.
--static and --live switch the two sources on in addition to the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		lang, _ := cmd.Flags().GetString("lang")
		if static, _ := cmd.Flags().GetBool("static"); static {
			cfg.Sources.UseStaticDataset = true
		}
		if live, _ := cmd.Flags().GetBool("live"); live {
			cfg.Sources.UseLiveQuery = true
		}

		d := driver.NewSPARQLDriver(cfg.Query.Endpoint, cfg.Query.UserAgent, cfg.QueryTimeout(),
			cfg.Query.RequestsPerSecond, cfg.Query.Burst)
		events := core.NewChronicle(d, cfg).HistoricEventsAll(cmd.Context(), lang)

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(events, "\n\n"))
		return nil
	},
}

func init() {
	eventsCmd.Flags().StringP("lang", "l", "de", "viewer language tag, e.g. de or en-GB")
	eventsCmd.Flags().Bool("static", false, "include the bundled dataset")
	eventsCmd.Flags().Bool("live", false, "include live Wikidata results")
}

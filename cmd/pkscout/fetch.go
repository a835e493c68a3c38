package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pharmaline/pkscout/internal/output"
	"github.com/pharmaline/pkscout/internal/rank"
)

// fetchCmd implements the fetch subcommand: classify and score explicitly
// named PMIDs without running a search.
var fetchCmd = &cobra.Command{
	Use:   "fetch <pmid...>",
	Short: "Fetch and classify articles by PMID",
	Long: `Fetch ESummary metadata for the given PMIDs and run the classification
pipeline on them. Without search keywords the relevance score reflects only
the recency penalty.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := newEntrezClient(cfg)
		docs, err := client.Summary(cmd.Context(), args)
		if err != nil {
			return fmt.Errorf("fetching summaries failed: %w", err)
		}

		records := rank.BuildRecords(docs, nil, recencyPolicy(cfg))
		ranked := rank.Run(records, nil, rank.DefaultSortKeys(), len(records))

		return output.FormatRecords(cmd.OutOrStdout(), ranked, "", outputCfg())
	},
}

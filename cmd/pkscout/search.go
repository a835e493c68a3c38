package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pharmaline/pkscout/internal/config"
	"github.com/pharmaline/pkscout/internal/entrez"
	"github.com/pharmaline/pkscout/internal/output"
	"github.com/pharmaline/pkscout/internal/query"
	"github.com/pharmaline/pkscout/internal/rank"
)

func init() {
	searchCmd.Flags().StringVar(&flagSort, "sort", "", `Sort spec, e.g. "score:desc,journal:asc"`)
	searchCmd.Flags().StringVar(&flagInclude, "include", "", "Vocabulary inclusion: all, none, or a percentage (1-100)")
	searchCmd.Flags().IntVar(&flagMinScore, "min-score", 0, "Drop results scoring below this")
	searchCmd.Flags().BoolVar(&flagRequirePK, "require-pk", false, "Keep only articles with a PK model")
	searchCmd.Flags().BoolVar(&flagReqParams, "require-params", false, "Keep only articles with estimated parameters")
	searchCmd.Flags().BoolVar(&flagReqVd, "require-vd", false, "Keep only articles mentioning distribution volume")
	searchCmd.Flags().BoolVar(&flagNoRecency, "no-recency", false, "Disable the publication-age penalty")
}

// searchCmd implements the search subcommand.
var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search PubMed and rank results by PK relevance",
	Long: `Search PubMed with your required terms, enriched with the pharmacometrics
vocabulary of the active profile. Results are classified, scored, filtered,
and sorted before display.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		result, err := runSearch(cmd.Context(), cfg, args)
		if err != nil {
			return err
		}

		return result.render(cmd.OutOrStdout())
	},
}

// searchOutcome carries everything a render or refine pass needs.
type searchOutcome struct {
	session          *rank.Session
	records          []rank.Record
	queryTranslation string
	found            int
}

func (s *searchOutcome) render(w io.Writer) error {
	return output.FormatRecords(w, s.records, s.queryTranslation, outputCfg())
}

// runSearch executes the full pipeline: build the enriched query, search,
// fetch summaries, classify and score, then filter/sort/truncate.
func runSearch(ctx context.Context, cfg config.Config, terms []string) (*searchOutcome, error) {
	profile, err := cfg.Profile(flagProfile)
	if err != nil {
		return nil, err
	}

	policy, overridden, err := includePolicy(flagInclude)
	if err != nil {
		return nil, err
	}
	if !overridden {
		policy, err = profile.Policy()
		if err != nil {
			return nil, err
		}
	}

	q := query.Build(terms, profile.Vocabulary(), policy)
	if q == "" {
		return nil, fmt.Errorf("nothing to search: no required terms and an empty vocabulary")
	}

	client := newEntrezClient(cfg)

	searchResult, err := client.Search(ctx, q, &entrez.SearchOptions{Limit: cfg.Limit})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if len(searchResult.IDs) == 0 {
		return &searchOutcome{
			session:          rank.NewSession(nil),
			queryTranslation: searchResult.QueryTranslation,
		}, nil
	}

	docs, err := client.Summary(ctx, searchResult.IDs)
	if err != nil {
		return nil, fmt.Errorf("fetching summaries failed: %w", err)
	}

	records := rank.BuildRecords(docs, terms, recencyPolicy(cfg))
	session := rank.NewSession(records)

	filters := append(profile.Filters(), cliFilters()...)
	keys, err := resolveSortKeys(profile)
	if err != nil {
		return nil, err
	}

	ranked := session.Refine(filters, keys, cfg.Limit)

	return &searchOutcome{
		session:          session,
		records:          ranked,
		queryTranslation: searchResult.QueryTranslation,
		found:            searchResult.Count,
	}, nil
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/pharmaline/pkscout/internal/rank"
)

// refineCmd runs one search and then lets the user iterate on filters and
// sorting over the already-fetched records. No refine pass touches the
// network again.
var refineCmd = &cobra.Command{
	Use:   "refine [terms...]",
	Short: "Search once, then interactively refine the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		terms := args
		if len(terms) == 0 {
			var input string
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Search terms").
					Description("Required keywords, e.g. 'vancomycin neonates'").
					Value(&input),
			))
			if err := form.Run(); err != nil {
				return err
			}
			terms = strings.Fields(input)
			if len(terms) == 0 {
				return fmt.Errorf("no search terms given")
			}
		}

		var outcome *searchOutcome
		var searchErr error
		err = spinner.New().
			Title("Searching PubMed...").
			Action(func() {
				outcome, searchErr = runSearch(cmd.Context(), cfg, terms)
			}).
			Run()
		if err != nil {
			return err
		}
		if searchErr != nil {
			return searchErr
		}

		if outcome.session.Size() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found. Try broader terms.")
			return nil
		}

		if err := outcome.render(cmd.OutOrStdout()); err != nil {
			return err
		}

		return refineLoop(cmd, outcome)
	},
}

// refineLoop repeatedly asks for a new filter/sort configuration and
// re-runs the pipeline over the session's held records.
func refineLoop(cmd *cobra.Command, outcome *searchOutcome) error {
	for {
		var (
			selected []string
			minScore string
			sortSpec string
			limit    string
			again    bool
		)

		form := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Require traits").
				Options(
					huh.NewOption("PK model", "pk"),
					huh.NewOption("Estimated parameters", "params"),
					huh.NewOption("Distribution volume", "vd"),
				).
				Value(&selected),
			huh.NewInput().
				Title("Minimum relevance score").
				Placeholder("leave empty for none").
				Value(&minScore),
			huh.NewSelect[string]().
				Title("Sort order").
				Options(
					huh.NewOption("Relevance (high first)", "score:desc"),
					huh.NewOption("PK models first", "pk:desc,modelscore:desc"),
					huh.NewOption("Journal (A-Z)", "journal:asc"),
					huh.NewOption("Publication date (newest text first)", "date:desc"),
				).
				Value(&sortSpec),
			huh.NewInput().
				Title("Show at most").
				Placeholder("20").
				Value(&limit),
			huh.NewConfirm().
				Title("Refine again after this pass?").
				Value(&again),
		))

		if err := form.Run(); err != nil {
			return err
		}

		filters, err := refineFilters(selected, minScore)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "invalid input: %v\n", err)
			continue
		}
		keys, err := rank.ParseSortKeys(sortSpec)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "invalid sort: %v\n", err)
			continue
		}

		n := outcome.session.Size()
		if limit = strings.TrimSpace(limit); limit != "" {
			n, err = strconv.Atoi(limit)
			if err != nil || n < 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid limit %q\n", limit)
				continue
			}
		}

		outcome.records = outcome.session.Refine(filters, keys, n)
		if err := outcome.render(cmd.OutOrStdout()); err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}

// refineFilters maps the form selections to rank filters.
func refineFilters(selected []string, minScore string) ([]rank.Filter, error) {
	var filters []rank.Filter
	for _, s := range selected {
		switch s {
		case "pk":
			filters = append(filters, rank.RequirePKModel())
		case "params":
			filters = append(filters, rank.RequireEstimatedParameters())
		case "vd":
			filters = append(filters, rank.RequireDistributionVolume())
		}
	}
	if minScore = strings.TrimSpace(minScore); minScore != "" {
		n, err := strconv.Atoi(minScore)
		if err != nil {
			return nil, fmt.Errorf("minimum score %q is not a number", minScore)
		}
		filters = append(filters, rank.MinScore(n))
	}
	return filters, nil
}

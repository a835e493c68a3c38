// Command pkscout searches PubMed for pharmacokinetic modelling literature
// and ranks the results with keyword heuristics.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pharmaline/pkscout/internal/config"
	"github.com/pharmaline/pkscout/internal/entrez"
	"github.com/pharmaline/pkscout/internal/ncbi"
	"github.com/pharmaline/pkscout/internal/output"
	"github.com/pharmaline/pkscout/internal/query"
	"github.com/pharmaline/pkscout/internal/rank"
)

var (
	flagJSON      bool
	flagHuman     bool
	flagCSV       string
	flagLimit     int
	flagAPIKey    string
	flagConfig    string
	flagProfile   string
	flagSort      string
	flagInclude   string
	flagMinScore  int
	flagRequirePK bool
	flagReqParams bool
	flagReqVd     bool
	flagNoRecency bool
)

func main() {
	// Optional .env for NCBI_API_KEY and PKSCOUT_* overrides.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pkscout",
	Short: "PubMed pharmacometrics search and ranking",
	Long: `pkscout searches PubMed through the NCBI E-utilities API, enriches queries
with a pharmacometrics vocabulary, and ranks results by keyword relevance,
PK model type, and studied population.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as structured JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagHuman, "human", "H", false, "Rich colorful terminal output")
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "Export results to CSV file")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 0, "Maximum number of results (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "NCBI API key (or set NCBI_API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Search profile name")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(refineCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(versionCmd)
}

func outputCfg() output.Config {
	return output.Config{
		JSON:    flagJSON,
		Human:   flagHuman,
		CSVFile: flagCSV,
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagLimit > 0 {
		cfg.Limit = flagLimit
	}
	if flagNoRecency {
		cfg.Recency = false
	}
	return cfg, nil
}

func newEntrezClient(cfg config.Config) *entrez.Client {
	var opts []ncbi.Option
	if cfg.APIKey != "" {
		opts = append(opts, ncbi.WithAPIKey(cfg.APIKey))
	}
	return entrez.NewClientWithBase(ncbi.NewBaseClient(opts...))
}

func recencyPolicy(cfg config.Config) rank.RecencyPolicy {
	return rank.RecencyPolicy{
		Enabled:       cfg.Recency,
		ReferenceYear: cfg.ReferenceYear,
	}
}

// includePolicy maps the --include flag to a query policy:
// "all", "none", or a percentage like "33".
func includePolicy(flag string) (query.Policy, bool, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "":
		return query.Policy{}, false, nil
	case "all":
		return query.IncludeAll(), true, nil
	case "none":
		return query.IncludeNone(), true, nil
	default:
		p, err := strconv.Atoi(strings.TrimSuffix(flag, "%"))
		if err != nil || p < 1 || p > 100 {
			return query.Policy{}, false, fmt.Errorf("invalid --include value %q (want all, none, or 1-100)", flag)
		}
		return query.IncludeFraction(p), true, nil
	}
}

// cliFilters builds the filters requested through flags, appended after the
// profile's own filters.
func cliFilters() []rank.Filter {
	var filters []rank.Filter
	if flagRequirePK {
		filters = append(filters, rank.RequirePKModel())
	}
	if flagReqParams {
		filters = append(filters, rank.RequireEstimatedParameters())
	}
	if flagReqVd {
		filters = append(filters, rank.RequireDistributionVolume())
	}
	if flagMinScore != 0 {
		filters = append(filters, rank.MinScore(flagMinScore))
	}
	return filters
}

// resolveSortKeys prefers the --sort flag over the profile's sort spec.
func resolveSortKeys(profile config.Profile) ([]rank.SortKey, error) {
	if flagSort != "" {
		return rank.ParseSortKeys(flagSort)
	}
	return profile.SortKeys()
}

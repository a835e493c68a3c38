// Package config loads pkscout settings and named search profiles. A
// profile bundles the inclusion policy, keyword vocabulary, filters and
// sort order for one search variant, so variants are configuration rather
// than separate code paths.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pharmaline/pkscout/internal/query"
	"github.com/pharmaline/pkscout/internal/rank"
)

// Config holds the full application configuration.
type Config struct {
	// APIKey is the NCBI API key; raises the request rate limit.
	APIKey string `mapstructure:"api_key" yaml:"api_key,omitempty"`

	// Limit is the default maximum number of results.
	Limit int `mapstructure:"limit" yaml:"limit"`

	// ReferenceYear anchors the recency penalty. Fixed rather than
	// wall-clock on purpose; override here when it drifts too far.
	ReferenceYear int `mapstructure:"reference_year" yaml:"reference_year"`

	// Recency toggles the publication-age penalty.
	Recency bool `mapstructure:"recency" yaml:"recency"`

	// DefaultProfile names the profile used when none is requested.
	DefaultProfile string `mapstructure:"default_profile" yaml:"default_profile"`

	// Profiles maps profile names to search variants.
	Profiles map[string]Profile `mapstructure:"profiles" yaml:"profiles"`
}

// Profile is one search variant: how the query is enriched and how results
// are filtered and ordered.
type Profile struct {
	// Inclusion selects the optional-term policy: "all", "fraction", "none".
	Inclusion string `mapstructure:"inclusion" yaml:"inclusion"`

	// Percent is the fraction percentage when Inclusion is "fraction".
	Percent int `mapstructure:"percent" yaml:"percent,omitempty"`

	// Keywords overrides the built-in domain vocabulary when non-empty.
	Keywords []string `mapstructure:"keywords" yaml:"keywords,omitempty"`

	// RequirePKModel keeps only articles flagged as containing a PK model.
	RequirePKModel bool `mapstructure:"require_pk_model" yaml:"require_pk_model,omitempty"`

	// RequireEstimatedParameters keeps only articles with estimated parameters.
	RequireEstimatedParameters bool `mapstructure:"require_estimated_parameters" yaml:"require_estimated_parameters,omitempty"`

	// RequireDistributionVolume keeps only articles mentioning distribution volume.
	RequireDistributionVolume bool `mapstructure:"require_distribution_volume" yaml:"require_distribution_volume,omitempty"`

	// MinScore drops articles scoring below this threshold when set.
	MinScore *int `mapstructure:"min_score" yaml:"min_score,omitempty"`

	// Sort is a sort spec like "score:desc,journal:asc".
	Sort string `mapstructure:"sort" yaml:"sort,omitempty"`
}

// Default returns the built-in configuration: the "ranked" profile mirrors
// plain relevance ranking, "pk-models" mirrors the model-focused variant.
func Default() Config {
	return Config{
		Limit:          20,
		ReferenceYear:  rank.DefaultReferenceYear,
		Recency:        true,
		DefaultProfile: "ranked",
		Profiles: map[string]Profile{
			"ranked": {
				Inclusion: "none",
				Sort:      "score:desc",
			},
			"pk-models": {
				Inclusion: "fraction",
				Percent:   33,
				Sort:      "pk:desc,modelscore:desc",
			},
		},
	}
}

// Load reads the configuration from file (or the default search paths when
// file is empty), applying environment overrides with the PKSCOUT_ prefix.
// A missing config file is not an error; defaults apply.
func Load(file string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("limit", def.Limit)
	v.SetDefault("reference_year", def.ReferenceYear)
	v.SetDefault("recency", def.Recency)
	v.SetDefault("default_profile", def.DefaultProfile)

	v.SetEnvPrefix("PKSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pkscout"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist; the default search paths
		// need not.
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := def
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("NCBI_API_KEY")
	}
	if cfg.Profiles == nil {
		cfg.Profiles = def.Profiles
	}

	return cfg, nil
}

// Profile resolves a profile by name, falling back to the default profile
// when name is empty.
func (c Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}

// ProfileNames returns the configured profile names, for listing.
func (c Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

// Policy converts the profile's inclusion setting to a query policy.
func (p Profile) Policy() (query.Policy, error) {
	switch strings.ToLower(p.Inclusion) {
	case "", "all":
		return query.IncludeAll(), nil
	case "none":
		return query.IncludeNone(), nil
	case "fraction":
		percent := p.Percent
		if percent <= 0 {
			percent = 33
		}
		return query.IncludeFraction(percent), nil
	default:
		return query.Policy{}, fmt.Errorf("unknown inclusion policy %q", p.Inclusion)
	}
}

// Vocabulary returns the profile's optional-term list: its own keywords
// when set, otherwise the built-in pharmacometrics vocabulary.
func (p Profile) Vocabulary() []string {
	if len(p.Keywords) > 0 {
		return p.Keywords
	}
	return query.PharmacometricsTerms()
}

// Filters builds the rank filters the profile asks for.
func (p Profile) Filters() []rank.Filter {
	var filters []rank.Filter
	if p.RequirePKModel {
		filters = append(filters, rank.RequirePKModel())
	}
	if p.RequireEstimatedParameters {
		filters = append(filters, rank.RequireEstimatedParameters())
	}
	if p.RequireDistributionVolume {
		filters = append(filters, rank.RequireDistributionVolume())
	}
	if p.MinScore != nil {
		filters = append(filters, rank.MinScore(*p.MinScore))
	}
	return filters
}

// SortKeys parses the profile's sort spec, defaulting to relevance order.
func (p Profile) SortKeys() ([]rank.SortKey, error) {
	if p.Sort == "" {
		return rank.DefaultSortKeys(), nil
	}
	return rank.ParseSortKeys(p.Sort)
}

// Package classify derives categorical attributes from article titles and
// summaries: the pharmacokinetic model type, the studied population, and
// independent boolean trait flags. Classification is deterministic and
// built on ordered keyword lists where the first match wins.
package classify

import (
	"strings"

	"github.com/pharmaline/pkscout/internal/textmatch"
)

// ModelType is the pharmacokinetic model classification.
type ModelType int

const (
	ModelUnspecified ModelType = iota
	ModelOneCompartment
	ModelTwoCompartment
	ModelLagTime
	ModelTransit
	ModelGenericPK
)

// String returns the presentation label for the model type.
func (m ModelType) String() string {
	switch m {
	case ModelOneCompartment:
		return "mono-compartimental"
	case ModelTwoCompartment:
		return "bi-compartimental"
	case ModelLagTime:
		return "with lag time"
	case ModelTransit:
		return "transit model"
	case ModelGenericPK:
		return "PK model"
	default:
		return "unspecified"
	}
}

// Population is the studied subject population.
type Population int

const (
	PopulationUnspecified Population = iota
	PopulationMice
	PopulationRats
	PopulationHumans
	PopulationChildren
	PopulationAdults
)

// String returns the presentation label for the population.
func (p Population) String() string {
	switch p {
	case PopulationMice:
		return "Mice"
	case PopulationRats:
		return "Rats"
	case PopulationHumans:
		return "Humans"
	case PopulationChildren:
		return "Children"
	case PopulationAdults:
		return "Adults"
	default:
		return "unspecified"
	}
}

// Classification holds every derived attribute for one article.
type Classification struct {
	ModelType  ModelType
	Population Population

	HasPKModel             bool
	HasEstimatedParameters bool
	HasDistributionVolume  bool
}

// modelTypePhrases maps each specific model type to its trigger phrases.
// Priority order is significant: the first type whose phrase appears wins,
// with no scoring among types.
var modelTypePhrases = []struct {
	model   ModelType
	phrases []string
}{
	{ModelOneCompartment, []string{"mono-compartimental", "monocompartimental", "one-compartment", "one compartment"}},
	{ModelTwoCompartment, []string{"bi-compartimental", "bicompartimental", "two-compartment", "two compartment"}},
	{ModelLagTime, []string{"with tlag", "tlag", "lag time", "lag-time"}},
	{ModelTransit, []string{"transit model", "transit compartment", "transit-model"}},
}

// populationTokens maps each population to its trigger tokens, scanned over
// whitespace-tokenized lowercased text in priority order.
var populationTokens = []struct {
	population Population
	tokens     []string
}{
	{PopulationMice, []string{"mice", "mouse"}},
	{PopulationRats, []string{"rats", "rat"}},
	{PopulationHumans, []string{"humans", "human"}},
	{PopulationChildren, []string{"children", "pediatric", "paediatric"}},
	{PopulationAdults, []string{"adults", "adult"}},
}

// pkModelKeywords flag the presence of any pharmacokinetic model mention.
var pkModelKeywords = []string{
	"pk model", "population pk", "nonlinear mixed effects",
	"one-compartment", "two-compartment", "multi-compartment", "compartmental", "pk",
}

// estimatedParameterKeywords flag explicit parameter-estimation language.
var estimatedParameterKeywords = []string{
	"estimated parameters", "parameter estimation", "parameter estimates",
	"estimated clearance", "estimated volume",
}

// distributionVolumeKeywords flag distribution-volume mentions.
var distributionVolumeKeywords = []string{
	"distribution volume", "volume of distribution", "vd",
}

// PKModelKeywords returns the keyword list used for the PK-model flag and
// the model keyword score.
func PKModelKeywords() []string {
	return append([]string(nil), pkModelKeywords...)
}

// Classify derives all categorical attributes from a title and summary.
// Empty text yields the all-fallback classification.
func Classify(title, summary string) Classification {
	combined := title + " " + summary

	return Classification{
		ModelType:              modelType(combined),
		Population:             population(combined),
		HasPKModel:             textmatch.ContainsAny(combined, pkModelKeywords),
		HasEstimatedParameters: hasEstimatedParameters(combined),
		HasDistributionVolume:  textmatch.ContainsAny(combined, distributionVolumeKeywords),
	}
}

// ModelScore counts PK-model keyword occurrences in text. Used as a
// secondary sort key so heavily model-focused articles rank first.
func ModelScore(text string) int {
	return textmatch.CountAll(text, pkModelKeywords)
}

// modelType returns the first matching specific model type, falling back
// to the generic PK label when only the bare "pk" token appears.
func modelType(text string) ModelType {
	lower := strings.ToLower(text)
	for _, entry := range modelTypePhrases {
		for _, phrase := range entry.phrases {
			if strings.Contains(lower, phrase) {
				return entry.model
			}
		}
	}
	if strings.Contains(lower, "pk") {
		return ModelGenericPK
	}
	return ModelUnspecified
}

// population scans whitespace tokens for the first matching population term.
func population(text string) Population {
	tokens := textmatch.Tokens(text)
	present := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		present[strings.Trim(tok, ".,;:()[]")] = true
	}

	for _, entry := range populationTokens {
		for _, tok := range entry.tokens {
			if present[tok] {
				return entry.population
			}
		}
	}
	return PopulationUnspecified
}

func hasEstimatedParameters(text string) bool {
	if textmatch.ContainsAny(text, estimatedParameterKeywords) {
		return true
	}
	return textmatch.HasParameterValue(text)
}

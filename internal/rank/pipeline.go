package rank

import (
	"fmt"
	"sort"
	"strings"
)

// Direction orders a sort key ascending or descending.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// SortKey pairs a record field with a direction.
type SortKey struct {
	Field     string
	Direction Direction
}

// DefaultSortKeys orders by relevance score descending.
func DefaultSortKeys() []SortKey {
	return []SortKey{{Field: FieldRelevanceScore, Direction: Desc}}
}

// ModelFirstSortKeys orders PK-model articles first, then by model keyword
// density. Mirrors the two-key "show modelled work on top" ranking.
func ModelFirstSortKeys() []SortKey {
	return []SortKey{
		{Field: FieldHasPKModel, Direction: Desc},
		{Field: FieldModelScore, Direction: Desc},
	}
}

// Filter is a boolean predicate over a record.
type Filter func(Record) bool

// RequirePKModel keeps records flagged as containing a PK model.
func RequirePKModel() Filter {
	return func(r Record) bool { return r.HasPKModel }
}

// RequireEstimatedParameters keeps records with estimated parameters.
func RequireEstimatedParameters() Filter {
	return func(r Record) bool { return r.HasEstimatedParameters }
}

// RequireDistributionVolume keeps records mentioning distribution volume.
func RequireDistributionVolume() Filter {
	return func(r Record) bool { return r.HasDistributionVolume }
}

// MinScore keeps records with a relevance score of at least n.
func MinScore(n int) Filter {
	return func(r Record) bool { return r.RelevanceScore >= n }
}

// MatchPopulation keeps records whose population label equals label,
// case-insensitively.
func MatchPopulation(label string) Filter {
	return func(r Record) bool { return strings.EqualFold(r.PopulationLabel, label) }
}

// MatchModelType keeps records whose model type label equals label,
// case-insensitively.
func MatchModelType(label string) Filter {
	return func(r Record) bool { return strings.EqualFold(r.ModelTypeLabel, label) }
}

// Run applies the fixed pipeline stages to already-built records: filter,
// stable multi-key sort, truncate. The input slice is never mutated; the
// result is a new ordered view. A limit larger than the filtered count
// returns everything.
func Run(records []Record, filters []Filter, keys []SortKey, limit int) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if matchesAll(r, filters) {
			out = append(out, r)
		}
	}

	if len(keys) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j], keys)
		})
	}

	// Truncation always applies to the filtered set, never the raw fetch.
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func matchesAll(r Record, filters []Filter) bool {
	for _, f := range filters {
		if !f(r) {
			return false
		}
	}
	return true
}

// less compares two records under the ordered key list. Equal records keep
// their relative input order through sort.SliceStable.
func less(a, b Record, keys []SortKey) bool {
	for _, k := range keys {
		c := compareField(a, b, k.Field)
		if c == 0 {
			continue
		}
		if k.Direction == Desc {
			return c > 0
		}
		return c < 0
	}
	return false
}

func compareField(a, b Record, field string) int {
	switch field {
	case FieldTitle:
		return strings.Compare(a.Title, b.Title)
	case FieldPublicationDate:
		return strings.Compare(a.PubDate, b.PubDate)
	case FieldLink:
		return strings.Compare(a.Link, b.Link)
	case FieldJournal:
		return strings.Compare(a.Journal, b.Journal)
	case FieldSummary:
		return strings.Compare(a.Summary, b.Summary)
	case FieldModelType:
		return strings.Compare(a.ModelTypeLabel, b.ModelTypeLabel)
	case FieldPopulation:
		return strings.Compare(a.PopulationLabel, b.PopulationLabel)
	case FieldRelevanceScore:
		return compareInt(a.RelevanceScore, b.RelevanceScore)
	case FieldModelScore:
		return compareInt(a.ModelScore, b.ModelScore)
	case FieldHasPKModel:
		return compareBool(a.HasPKModel, b.HasPKModel)
	case FieldHasEstimatedParameters:
		return compareBool(a.HasEstimatedParameters, b.HasEstimatedParameters)
	case FieldHasDistributionVolume:
		return compareBool(a.HasDistributionVolume, b.HasDistributionVolume)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// sortFieldAliases maps CLI-friendly names to record fields.
var sortFieldAliases = map[string]string{
	"title":      FieldTitle,
	"date":       FieldPublicationDate,
	"journal":    FieldJournal,
	"summary":    FieldSummary,
	"model":      FieldModelType,
	"population": FieldPopulation,
	"score":      FieldRelevanceScore,
	"modelscore": FieldModelScore,
	"pk":         FieldHasPKModel,
	"params":     FieldHasEstimatedParameters,
	"vd":         FieldHasDistributionVolume,
}

// ParseSortKeys parses a spec like "score:desc,journal:asc" into sort keys.
// Direction defaults to ascending when omitted.
func ParseSortKeys(spec string) ([]SortKey, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var keys []SortKey
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name := part
		dir := Asc
		if i := strings.IndexByte(part, ':'); i >= 0 {
			name = strings.TrimSpace(part[:i])
			switch d := strings.ToLower(strings.TrimSpace(part[i+1:])); d {
			case "asc", "":
				dir = Asc
			case "desc":
				dir = Desc
			default:
				return nil, fmt.Errorf("unknown sort direction %q in %q", d, part)
			}
		}

		field, ok := sortFieldAliases[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q", name)
		}
		keys = append(keys, SortKey{Field: field, Direction: dir})
	}
	return keys, nil
}

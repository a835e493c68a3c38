// Package rank turns fetched article summaries into classified, scored,
// filtered and ordered result sets. Scoring is keyword density with an
// optional recency penalty; ordering is a stable multi-key sort.
package rank

import (
	"strconv"
	"strings"

	"github.com/pharmaline/pkscout/internal/textmatch"
)

// DefaultReferenceYear is the fixed reference year for the recency penalty.
// It is a constant rather than the wall clock, so scores drift as the
// vocabulary ages; callers can override it through RecencyPolicy.
const DefaultReferenceYear = 2025

// RecencyPolicy controls the publication-age penalty.
type RecencyPolicy struct {
	Enabled       bool
	ReferenceYear int
}

// DefaultRecency returns the enabled policy with the default reference year.
func DefaultRecency() RecencyPolicy {
	return RecencyPolicy{Enabled: true, ReferenceYear: DefaultReferenceYear}
}

// Score computes the relevance score for an article: total keyword
// occurrences over title and summary, minus the recency penalty. The score
// is ordinal, unbounded, and may be negative.
func Score(title, summary, pubDate string, keywords []string, rp RecencyPolicy) int {
	base := textmatch.CountAll(title+" "+summary, keywords)
	return base - recencyPenalty(pubDate, rp)
}

// recencyPenalty returns max(0, reference−year) when the date is in the
// structured space-separated form ("2023 Apr 01"). Any other shape, or an
// unparseable year token, contributes zero rather than an error.
func recencyPenalty(pubDate string, rp RecencyPolicy) int {
	if !rp.Enabled {
		return 0
	}
	if !strings.Contains(pubDate, " ") {
		return 0
	}
	year, err := strconv.Atoi(strings.SplitN(pubDate, " ", 2)[0])
	if err != nil {
		return 0
	}
	ref := rp.ReferenceYear
	if ref == 0 {
		ref = DefaultReferenceYear
	}
	if penalty := ref - year; penalty > 0 {
		return penalty
	}
	return 0
}

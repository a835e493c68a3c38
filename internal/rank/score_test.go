package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_KeywordDensity(t *testing.T) {
	keywords := []string{"antibiotic", "icu"}
	rp := RecencyPolicy{Enabled: false}

	// Title and summary are scanned as one concatenated text.
	got := Score("Antibiotic PK in ICU patients", "Antibiotic PK in ICU patients", "2023 Apr 01", keywords, rp)
	assert.Equal(t, 4, got)

	got = Score("General antibiotic review", "General antibiotic review", "2010", keywords, rp)
	assert.Equal(t, 2, got)

	got = Score("Unrelated cardiology study", "Unrelated cardiology study", "2020 Jan", keywords, rp)
	assert.Equal(t, 0, got)
}

func TestScore_RecencyPenalty(t *testing.T) {
	rp := RecencyPolicy{Enabled: true, ReferenceYear: 2025}

	// Structured date: leading year token is parsed and penalized.
	got := Score("antibiotic", "", "2023 Apr 01", []string{"antibiotic"}, rp)
	assert.Equal(t, 1-2, got)

	// Bare year has no space, so recency contributes zero.
	got = Score("antibiotic", "", "2010", []string{"antibiotic"}, rp)
	assert.Equal(t, 1, got)

	// Unparseable leading token contributes zero, never an error.
	got = Score("antibiotic", "", "Spring 2020", []string{"antibiotic"}, rp)
	assert.Equal(t, 1, got)

	// Empty date contributes zero.
	got = Score("antibiotic", "", "", []string{"antibiotic"}, rp)
	assert.Equal(t, 1, got)
}

func TestScore_NeverRewardsFutureDates(t *testing.T) {
	rp := RecencyPolicy{Enabled: true, ReferenceYear: 2025}
	got := Score("antibiotic", "", "2030 Jan 01", []string{"antibiotic"}, rp)
	assert.Equal(t, 1, got, "articles newer than the reference year get no bonus")
}

func TestScore_CanGoNegative(t *testing.T) {
	rp := RecencyPolicy{Enabled: true, ReferenceYear: 2025}
	got := Score("antibiotic", "", "1990 Jan 01", []string{"antibiotic"}, rp)
	assert.Equal(t, 1-35, got)
}

func TestScore_DisabledRecency(t *testing.T) {
	got := Score("antibiotic", "", "1990 Jan 01", []string{"antibiotic"}, RecencyPolicy{Enabled: false})
	assert.Equal(t, 1, got)
}

func TestScore_ZeroReferenceYearFallsBack(t *testing.T) {
	rp := RecencyPolicy{Enabled: true}
	got := Score("antibiotic", "", "2023 Apr 01", []string{"antibiotic"}, rp)
	assert.Equal(t, 1-(DefaultReferenceYear-2023), got)
}

func TestDefaultRecency(t *testing.T) {
	rp := DefaultRecency()
	assert.True(t, rp.Enabled)
	assert.Equal(t, DefaultReferenceYear, rp.ReferenceYear)
}

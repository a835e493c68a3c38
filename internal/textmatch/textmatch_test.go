package textmatch

import "testing"

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		expected bool
	}{
		{"simple match", "population PK model of vancomycin", []string{"pk model"}, true},
		{"case insensitive", "Population PK Model", []string{"pk model"}, true},
		{"no match", "general antibiotic review", []string{"pk model", "clearance"}, false},
		{"second keyword matches", "drug clearance in adults", []string{"pk model", "clearance"}, true},
		{"empty text", "", []string{"pk"}, false},
		{"empty keywords", "some text", nil, false},
		{"empty keyword ignored", "some text", []string{""}, false},
		{"substring across words", "bicompartimental analysis", []string{"compartimental"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsAny(tc.text, tc.keywords); got != tc.expected {
				t.Errorf("ContainsAny(%q, %v) = %v, want %v", tc.text, tc.keywords, got, tc.expected)
			}
		})
	}
}

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keyword  string
		expected int
	}{
		{"overlapping counted", "aaa", "aa", 2},
		{"single occurrence", "pk model of drug", "pk", 1},
		{"multiple occurrences", "pk model, population pk, pk", "pk", 3},
		{"case insensitive", "PK model with pk data", "pk", 2},
		{"no occurrence", "antibiotic review", "pk", 0},
		{"empty keyword", "text", "", 0},
		{"empty text", "", "pk", 0},
		{"keyword longer than text", "pk", "pk model", 0},
		{"keyword inside word", "speaking", "pk", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountOccurrences(tc.text, tc.keyword); got != tc.expected {
				t.Errorf("CountOccurrences(%q, %q) = %d, want %d", tc.text, tc.keyword, got, tc.expected)
			}
		})
	}
}

func TestCountOccurrences_KeywordInsideWordCounts(t *testing.T) {
	// Substring semantics, not token semantics: "pk" inside "pkpd" counts.
	if got := CountOccurrences("pkpd modeling", "pk"); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestCountAll(t *testing.T) {
	got := CountAll("Antibiotic PK in ICU patients", []string{"antibiotic", "icu"})
	if got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	got = CountAll("clearance and clearance and absorption", []string{"clearance", "absorption"})
	if got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestHasParameterValue(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"vd with equals and unit", "Vd = 42.5 L in healthy adults", true},
		{"cl with colon", "CL: 3.1 L/h", true},
		{"ka bare number", "estimated ka 0.8 for oral absorption", true},
		{"tlag", "Tlag=0.5 h", true},
		{"mtt", "MTT 2.4 h transit model", true},
		{"spelled out", "volume of distribution 0.7 L/kg", true},
		{"clearance spelled out", "clearance = 12 ml/min", true},
		{"no number", "the volume of distribution was large", false},
		{"unrelated number", "study included 42 patients", false},
		{"empty", "", false},
		{"case insensitive", "vd=10l", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasParameterValue(tc.text); got != tc.expected {
				t.Errorf("HasParameterValue(%q) = %v, want %v", tc.text, got, tc.expected)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("Antibiotic PK  in\tICU Patients")
	want := []string{"antibiotic", "pk", "in", "icu", "patients"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

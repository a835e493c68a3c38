// Package output provides formatting for pkscout results: plain text, rich
// terminal tables, JSON, and CSV export.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pharmaline/pkscout/internal/rank"
)

// Config controls which output mode(s) are active.
type Config struct {
	JSON    bool   // Structured JSON
	Human   bool   // Rich terminal output with color
	CSVFile string // Export results to this CSV path (works alongside any mode)
}

// FormatRecords writes ranked article records. The query translation, when
// present, is echoed so users can see what PubMed actually ran.
func FormatRecords(w io.Writer, records []rank.Record, queryTranslation string, cfg Config) error {
	if cfg.CSVFile != "" {
		if err := WriteCSVFile(cfg.CSVFile, records); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
	}
	if cfg.JSON {
		return writeJSON(w, records)
	}
	if cfg.Human {
		return formatRecordsHuman(w, records, queryTranslation)
	}
	return formatRecordsPlain(w, records, queryTranslation)
}

// --- Plain text formatter (default) ---

func formatRecordsPlain(w io.Writer, records []rank.Record, queryTranslation string) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	if queryTranslation != "" {
		fmt.Fprintf(w, "Query: %s\n\n", queryTranslation)
	}

	for i, r := range records {
		if i > 0 {
			fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("─", 80))
		}

		fmt.Fprintf(w, "PMID: %s\n", r.PMID)
		fmt.Fprintf(w, "Title: %s\n", r.Title)
		fmt.Fprintf(w, "Journal: %s\n", r.Journal)
		fmt.Fprintf(w, "Published: %s\n", r.PubDate)
		fmt.Fprintf(w, "Link: %s\n", r.Link)
		fmt.Fprintf(w, "Model type: %s\n", r.ModelTypeLabel)
		fmt.Fprintf(w, "Population: %s\n", r.PopulationLabel)
		fmt.Fprintf(w, "Relevance: %d (model keywords: %d)\n", r.RelevanceScore, r.ModelScore)

		var traits []string
		if r.HasPKModel {
			traits = append(traits, "PK model")
		}
		if r.HasEstimatedParameters {
			traits = append(traits, "estimated parameters")
		}
		if r.HasDistributionVolume {
			traits = append(traits, "distribution volume")
		}
		if len(traits) > 0 {
			fmt.Fprintf(w, "Traits: %s\n", strings.Join(traits, ", "))
		}
	}

	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

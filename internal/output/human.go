package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pharmaline/pkscout/internal/rank"
)

// --- Styles ---

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bold   = lipgloss.NewStyle().Bold(true)
	dim    = lipgloss.NewStyle().Faint(true)
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// truncate cuts a string to maxLen characters, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}

func formatRecordsHuman(w io.Writer, records []rank.Record, queryTranslation string) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "🔬 No results found.")
		return nil
	}

	fmt.Fprintln(w, bold.Render(fmt.Sprintf("🔬 %d ranked results", len(records))))
	if queryTranslation != "" {
		fmt.Fprintf(w, "   Query: %s\n", dim.Render(queryTranslation))
	}
	fmt.Fprintln(w)

	var rows [][]string
	for i, r := range records {
		score := strconv.Itoa(r.RelevanceScore)
		if r.RelevanceScore > 0 {
			score = green.Render(score)
		} else if r.RelevanceScore < 0 {
			score = yellow.Render(score)
		}

		model := r.ModelTypeLabel
		if r.HasPKModel {
			model = green.Render(model)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			cyan.Render(r.PMID),
			bold.Render(truncate(r.Title, 48)),
			model,
			r.PopulationLabel,
			score,
			truncate(r.Journal, 24),
		})
	}

	t := table.New().
		Headers("#", "PMID", "Title", "Model", "Population", "Score", "Journal").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())

	fmt.Fprintln(w)
	fmt.Fprintln(w, dim.Render("💾 Use --csv results.csv to export"))
	return nil
}

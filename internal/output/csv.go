package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pharmaline/pkscout/internal/rank"
)

// csvHeader is the export header row. The field names are a stable
// contract; downstream consumers match on them verbatim.
var csvHeader = []string{
	"PMID",
	rank.FieldTitle,
	rank.FieldPublicationDate,
	rank.FieldLink,
	rank.FieldJournal,
	rank.FieldSummary,
	rank.FieldModelType,
	rank.FieldPopulation,
	rank.FieldRelevanceScore,
	rank.FieldModelScore,
	rank.FieldHasPKModel,
	rank.FieldHasEstimatedParameters,
	rank.FieldHasDistributionVolume,
}

// WriteCSV writes records as CSV with the stable header row.
func WriteCSV(w io.Writer, records []rank.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.PMID,
			r.Title,
			r.PubDate,
			r.Link,
			r.Journal,
			r.Summary,
			r.ModelTypeLabel,
			r.PopulationLabel,
			strconv.Itoa(r.RelevanceScore),
			strconv.Itoa(r.ModelScore),
			strconv.FormatBool(r.HasPKModel),
			strconv.FormatBool(r.HasEstimatedParameters),
			strconv.FormatBool(r.HasDistributionVolume),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV output: %w", err)
	}
	return nil
}

// WriteCSVFile writes records as CSV to path.
func WriteCSVFile(path string, records []rank.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, records)
}

// ReadCSV parses a previously exported CSV back into records. Derived
// attributes come back as labels and flags; the enum classification is
// presentation-edge data and is not reconstructed.
func ReadCSV(r io.Reader) ([]rank.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("CSV header missing column %q", name)
		}
	}

	var records []rank.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		rec := rank.Record{
			PMID:            row[col["PMID"]],
			Title:           row[col[rank.FieldTitle]],
			PubDate:         row[col[rank.FieldPublicationDate]],
			Link:            row[col[rank.FieldLink]],
			Journal:         row[col[rank.FieldJournal]],
			Summary:         row[col[rank.FieldSummary]],
			ModelTypeLabel:  row[col[rank.FieldModelType]],
			PopulationLabel: row[col[rank.FieldPopulation]],
		}
		rec.RelevanceScore, err = strconv.Atoi(row[col[rank.FieldRelevanceScore]])
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", rank.FieldRelevanceScore, err)
		}
		rec.ModelScore, err = strconv.Atoi(row[col[rank.FieldModelScore]])
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", rank.FieldModelScore, err)
		}
		rec.HasPKModel, err = strconv.ParseBool(row[col[rank.FieldHasPKModel]])
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", rank.FieldHasPKModel, err)
		}
		rec.HasEstimatedParameters, err = strconv.ParseBool(row[col[rank.FieldHasEstimatedParameters]])
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", rank.FieldHasEstimatedParameters, err)
		}
		rec.HasDistributionVolume, err = strconv.ParseBool(row[col[rank.FieldHasDistributionVolume]])
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", rank.FieldHasDistributionVolume, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

package rank

import (
	"github.com/pharmaline/pkscout/internal/classify"
	"github.com/pharmaline/pkscout/internal/entrez"
)

// Stable field names shared by sorting and the export header row. The CSV
// export must preserve these verbatim.
const (
	FieldTitle                  = "Title"
	FieldPublicationDate        = "PublicationDate"
	FieldLink                   = "Link"
	FieldJournal                = "Journal"
	FieldSummary                = "Summary"
	FieldModelType              = "ModelType"
	FieldPopulation             = "Population"
	FieldRelevanceScore         = "RelevanceScore"
	FieldModelScore             = "ModelScore"
	FieldHasPKModel             = "HasPKModel"
	FieldHasEstimatedParameters = "HasEstimatedParameters"
	FieldHasDistributionVolume  = "HasDistributionVolume"
)

// Record is one retrieved publication with its derived attributes. Records
// are created once per fetched PMID and never mutated after classification;
// a pipeline run owns its records exclusively.
type Record struct {
	PMID    string `json:"pmid"`
	Title   string `json:"title"`
	PubDate string `json:"pubdate"`
	Journal string `json:"journal"`
	Link    string `json:"link"`

	// Summary currently duplicates the title: ESummary carries no
	// abstract, so summary-dependent heuristics are only as good as the
	// title. Unreliable by design, flagged rather than hidden.
	Summary string `json:"summary"`

	Classification classify.Classification `json:"-"`

	ModelTypeLabel  string `json:"model_type"`
	PopulationLabel string `json:"population"`

	RelevanceScore int `json:"relevance_score"`
	ModelScore     int `json:"model_score"`

	HasPKModel             bool `json:"has_pk_model"`
	HasEstimatedParameters bool `json:"has_estimated_parameters"`
	HasDistributionVolume  bool `json:"has_distribution_volume"`
}

// BuildRecords classifies and scores each fetched summary, producing
// immutable records in input order.
func BuildRecords(docs []entrez.DocSummary, keywords []string, rp RecencyPolicy) []Record {
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		// No separate abstract source: the title stands in as summary.
		summary := doc.Title

		c := classify.Classify(doc.Title, summary)
		combined := doc.Title + " " + summary

		records = append(records, Record{
			PMID:                   doc.PMID,
			Title:                  doc.Title,
			PubDate:                doc.PubDate,
			Journal:                doc.Journal,
			Link:                   entrez.ArticleURL(doc.PMID),
			Summary:                summary,
			Classification:         c,
			ModelTypeLabel:         c.ModelType.String(),
			PopulationLabel:        c.Population.String(),
			RelevanceScore:         Score(doc.Title, summary, doc.PubDate, keywords, rp),
			ModelScore:             classify.ModelScore(combined),
			HasPKModel:             c.HasPKModel,
			HasEstimatedParameters: c.HasEstimatedParameters,
			HasDistributionVolume:  c.HasDistributionVolume,
		})
	}
	return records
}

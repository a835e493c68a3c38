// Package entrez provides a client for the PubMed E-utilities endpoints
// used by pkscout: ESearch for PMID discovery and ESummary for article
// metadata.
package entrez

// ArticleURLPrefix is the canonical PubMed article URL prefix.
const ArticleURLPrefix = "https://pubmed.ncbi.nlm.nih.gov/"

// ArticleURL returns the canonical PubMed link for a PMID. This is a pure
// string format, not a live lookup.
func ArticleURL(pmid string) string {
	return ArticleURLPrefix + pmid + "/"
}

// SearchResult represents the result of an ESearch query.
type SearchResult struct {
	Count            int      `json:"count"`
	IDs              []string `json:"ids"`
	QueryTranslation string   `json:"query_translation"`
}

// SearchOptions configures a search query.
type SearchOptions struct {
	Limit   int    `json:"limit,omitempty"`
	Sort    string `json:"sort,omitempty"`
	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`
}

// DocSummary holds the ESummary metadata for one article. PubDate is the
// loosely structured free-text date PubMed returns (e.g. "2023 Apr 01" or
// just "2010").
type DocSummary struct {
	PMID    string `json:"pmid"`
	Title   string `json:"title"`
	PubDate string `json:"pubdate"`
	Journal string `json:"journal"`
}

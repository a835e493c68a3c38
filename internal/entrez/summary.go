package entrez

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// esummaryResponse represents the raw JSON response from ESummary.
// The result object maps each PMID to its summary, plus a "uids" array
// listing the PMIDs in response order.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type esummaryDoc struct {
	UID     string `json:"uid"`
	Title   string `json:"title"`
	PubDate string `json:"pubdate"`
	Source  string `json:"source"`
}

// Summary retrieves ESummary metadata for the given PMIDs. The "uids" key
// in the response is bookkeeping, not an article, and is always dropped.
// Results are returned in the order the response lists them.
func (c *Client) Summary(ctx context.Context, pmids []string) ([]DocSummary, error) {
	if len(pmids) == 0 {
		return nil, fmt.Errorf("at least one PMID is required")
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(pmids, ","))
	params.Set("retmode", "json")

	body, err := c.DoGet(ctx, "esummary.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("summary request failed: %w", err)
	}

	return parseSummaries(body)
}

// parseSummaries decodes the ESummary result map into ordered DocSummary
// values, skipping the "uids" metadata entry.
func parseSummaries(data []byte) ([]DocSummary, error) {
	var resp esummaryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing summary response: %w", err)
	}

	order := summaryOrder(resp.Result)

	docs := make([]DocSummary, 0, len(order))
	for _, id := range order {
		raw, ok := resp.Result[id]
		if !ok {
			continue
		}
		var doc esummaryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parsing summary for PMID %s: %w", id, err)
		}
		pmid := doc.UID
		if pmid == "" {
			pmid = id
		}
		docs = append(docs, DocSummary{
			PMID:    pmid,
			Title:   doc.Title,
			PubDate: doc.PubDate,
			Journal: doc.Source,
		})
	}

	return docs, nil
}

// summaryOrder returns the PMIDs to decode, preferring the response's own
// "uids" ordering and falling back to sorted map keys so output stays
// deterministic either way.
func summaryOrder(result map[string]json.RawMessage) []string {
	if raw, ok := result["uids"]; ok {
		var uids []string
		if err := json.Unmarshal(raw, &uids); err == nil {
			return uids
		}
	}

	keys := make([]string, 0, len(result))
	for k := range result {
		if k == "uids" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

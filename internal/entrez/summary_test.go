package entrez

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSummary_Success(t *testing.T) {
	fixture := loadTestdata(t, "esummary_ok.json")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("db"); got != "pubmed" {
			t.Errorf("expected db=pubmed, got %q", got)
		}
		if got := q.Get("id"); got != "38123456,37999001" {
			t.Errorf("expected id=38123456,37999001, got %q", got)
		}
		if got := q.Get("retmode"); got != "json" {
			t.Errorf("expected retmode=json, got %q", got)
		}
		w.Write(fixture)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAPIKey("test"))
	docs, err := c.Summary(context.Background(), []string{"38123456", "37999001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(docs))
	}
	if docs[0].PMID != "38123456" {
		t.Errorf("expected first PMID '38123456', got %q", docs[0].PMID)
	}
	if docs[0].Title != "Antibiotic PK in ICU patients, bi-compartimental model" {
		t.Errorf("unexpected title %q", docs[0].Title)
	}
	if docs[0].PubDate != "2023 Apr 01" {
		t.Errorf("expected pubdate '2023 Apr 01', got %q", docs[0].PubDate)
	}
	if docs[0].Journal != "Antimicrob Agents Chemother" {
		t.Errorf("unexpected journal %q", docs[0].Journal)
	}
	if docs[1].PMID != "37999001" {
		t.Errorf("expected second PMID '37999001', got %q", docs[1].PMID)
	}
}

func TestSummary_UIDsKeyExcluded(t *testing.T) {
	fixture := loadTestdata(t, "esummary_ok.json")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(fixture)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAPIKey("test"))
	docs, err := c.Summary(context.Background(), []string{"38123456", "37999001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, d := range docs {
		if d.PMID == "uids" {
			t.Error("metadata key 'uids' must never appear as an article")
		}
	}
}

func TestSummary_MissingUIDsArray(t *testing.T) {
	// Without the uids array the parser falls back to sorted map keys.
	body := []byte(`{"result": {
		"200": {"uid": "200", "title": "Second", "pubdate": "2020", "source": "J B"},
		"100": {"uid": "100", "title": "First", "pubdate": "2021", "source": "J A"}
	}}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAPIKey("test"))
	docs, err := c.Summary(context.Background(), []string{"100", "200"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(docs))
	}
	if docs[0].PMID != "100" || docs[1].PMID != "200" {
		t.Errorf("expected deterministic order [100 200], got [%s %s]", docs[0].PMID, docs[1].PMID)
	}
}

func TestSummary_EmptyResult(t *testing.T) {
	fixture := loadTestdata(t, "esummary_empty.json")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(fixture)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAPIKey("test"))
	docs, err := c.Summary(context.Background(), []string{"99999999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected 0 summaries, got %d", len(docs))
	}
}

func TestSummary_NoPMIDs(t *testing.T) {
	c := NewClient(WithAPIKey("test"))
	_, err := c.Summary(context.Background(), nil)
	if err == nil {
		t.Error("expected error for empty PMID list")
	}
}

func TestSummary_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAPIKey("test"))
	_, err := c.Summary(context.Background(), []string{"123"})
	if err == nil {
		t.Error("expected decode error for malformed body")
	}
}

func TestArticleURL(t *testing.T) {
	got := ArticleURL("38123456")
	want := "https://pubmed.ncbi.nlm.nih.gov/38123456/"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

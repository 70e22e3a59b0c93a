package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ansh3878/matrix-jobs/internal/models"
)

func TestJSearchDisabledWithoutKey(t *testing.T) {
	jsearch := NewJSearch(nil, "https://jsearch.example", "")
	if jsearch.Enabled() {
		t.Fatalf("expected disabled provider without API key")
	}

	jobs, err := jsearch.Search(context.Background(), models.DefaultQuery())
	if err != nil {
		t.Fatalf("disabled Search() error = %v, want nil", err)
	}
	if jobs != nil {
		t.Fatalf("disabled Search() = %v, want nil", jobs)
	}
}

func TestJSearchSearchURL(t *testing.T) {
	jsearch := NewJSearch(nil, "https://jsearch.example", "key")

	got := jsearch.searchURL(models.Query{Text: "golang", Location: "Berlin", Page: 2})
	for _, part := range []string{"query=golang", "location=Berlin", "page=2", "num_pages=1"} {
		if !strings.Contains(got, part) {
			t.Fatalf("url %q missing %q", got, part)
		}
	}

	// Empty search text falls back to a broad query.
	got = jsearch.searchURL(models.Query{Page: 1})
	if !strings.Contains(got, "query=developer") {
		t.Fatalf("expected fallback query, got %s", got)
	}
	if strings.Contains(got, "location=") {
		t.Fatalf("expected no location param, got %s", got)
	}
}

func TestJSearchSearch(t *testing.T) {
	payload := `{
		"data": [
			{
				"job_id": "abc123",
				"job_title": "Backend Engineer",
				"employer_name": "Acme",
				"job_city": "Austin",
				"job_state": "TX",
				"job_country": "US",
				"job_min_salary": 110000,
				"job_max_salary": 150000,
				"job_employment_type": "FULLTIME",
				"job_apply_link": "https://example.com/apply",
				"job_posted_at_datetime_utc": "2024-03-05T12:00:00Z",
				"job_is_remote": false,
				"job_required_skills": ["go", "sql"]
			},
			{
				"job_id": "def456",
				"job_title": "SRE",
				"employer_name": "Beta",
				"job_google_link": "https://google.com/jobs/def456",
				"job_posted_at_timestamp": 1709640000,
				"job_is_remote": true
			}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-key"); got != "secret" {
			t.Errorf("x-rapidapi-key = %q, want secret", got)
		}
		if got := r.Header.Get("x-rapidapi-host"); got != jsearchHost {
			t.Errorf("x-rapidapi-host = %q, want %q", got, jsearchHost)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	jsearch := NewJSearch(mustClient(t), srv.URL, "secret")
	if !jsearch.Enabled() {
		t.Fatalf("expected enabled provider with API key")
	}

	jobs, err := jsearch.Search(context.Background(), models.DefaultQuery())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	first := jobs[0]
	if first.ID != "jsearch_abc123" {
		t.Errorf("ID = %q, want jsearch_abc123", first.ID)
	}
	if first.Source != "JSearch" {
		t.Errorf("Source = %q, want JSearch", first.Source)
	}
	if first.Location != "Austin, TX, US" {
		t.Errorf("Location = %q, want joined city/state/country", first.Location)
	}
	if first.Salary != "150000" {
		t.Errorf("Salary = %q, want max salary 150000", first.Salary)
	}
	if first.IsRemote {
		t.Errorf("expected IsRemote=false from explicit flag")
	}
	if first.URL != "https://example.com/apply" {
		t.Errorf("URL = %q, want apply link", first.URL)
	}

	second := jobs[1]
	if second.Location != "Remote" {
		t.Errorf("Location = %q, want Remote fallback", second.Location)
	}
	if second.Type != "Unknown" {
		t.Errorf("Type = %q, want Unknown fallback", second.Type)
	}
	if second.URL != "https://google.com/jobs/def456" {
		t.Errorf("URL = %q, want google link fallback", second.URL)
	}
	if second.PostedAt == nil {
		t.Fatalf("expected PostedAt from unix timestamp")
	}
	if second.PostedAt.Unix() != 1709640000 {
		t.Errorf("PostedAt = %v, want unix 1709640000", second.PostedAt)
	}
	if !second.IsRemote {
		t.Errorf("expected IsRemote=true from explicit flag")
	}
}

func TestNormalizeJSearchSalaryFallsBackToMin(t *testing.T) {
	min := 90000.0
	job := normalizeJSearch(jsearchJob{JobID: "x", JobMinSalary: &min})
	if job.Salary != "90000" {
		t.Fatalf("Salary = %q, want 90000", job.Salary)
	}

	job = normalizeJSearch(jsearchJob{JobID: "y"})
	if job.Salary != "" {
		t.Fatalf("Salary = %q, want empty", job.Salary)
	}
}

func TestProviderIDsNeverCollide(t *testing.T) {
	// Both providers can hand out the native ID "7"; the provider prefix
	// keeps the canonical IDs distinct.
	remotive := normalizeRemotive(remotiveJob{ID: 7})
	jsearch := normalizeJSearch(jsearchJob{JobID: "7"})

	if remotive.ID == jsearch.ID {
		t.Fatalf("expected distinct IDs, both %q", remotive.ID)
	}
	if remotive.ID != "remotive_7" || jsearch.ID != "jsearch_7" {
		t.Fatalf("unexpected IDs: %q, %q", remotive.ID, jsearch.ID)
	}
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ansh3878/matrix-jobs/internal/models"
)

type stubSearcher struct {
	page  models.Page
	err   error
	query models.Query
}

func (s *stubSearcher) Search(ctx context.Context, query models.Query) (models.Page, error) {
	s.query = query
	if s.err != nil {
		return models.Page{}, s.err
	}
	return s.page, nil
}

func newTestServer(searcher Searcher) *Server {
	return New(":0", searcher, zerolog.Nop())
}

func doRequest(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestJobsEndpointSuccess(t *testing.T) {
	posted := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	searcher := &stubSearcher{page: models.Page{
		Page:    1,
		PerPage: 20,
		Total:   1,
		Source:  "all",
		Results: []models.Job{{
			ID:       "remotive_7",
			Title:    "Go Developer",
			Company:  "Acme",
			Location: "Remote",
			Type:     "Full-time",
			Source:   "Remotive",
			URL:      "https://remotive.com/jobs/7",
			PostedAt: &posted,
			Tags:     []string{"go"},
			IsRemote: true,
		}},
	}}

	rec := doRequest(t, newTestServer(searcher), "/api/jobs?q=golang&page=1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var envelope struct {
		Page    int          `json:"page"`
		PerPage int          `json:"perPage"`
		Total   int          `json:"total"`
		Source  string       `json:"source"`
		Results []models.Job `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if envelope.Total != 1 || len(envelope.Results) != 1 {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if envelope.Results[0].ID != "remotive_7" {
		t.Fatalf("Results[0].ID = %q", envelope.Results[0].ID)
	}

	if searcher.query.Text != "golang" {
		t.Fatalf("handler passed Text = %q, want golang", searcher.query.Text)
	}
}

func TestJobsEndpointEmptyResultsIsValid(t *testing.T) {
	searcher := &stubSearcher{page: models.Page{
		Page:    1,
		PerPage: 20,
		Total:   0,
		Source:  "remotive",
		Results: []models.Job{},
	}}

	rec := doRequest(t, newTestServer(searcher), "/api/jobs?source=remotive")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Fatalf("expected empty results array, got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"total":0`) {
		t.Fatalf("expected total 0, got %s", rec.Body.String())
	}
}

func TestJobsEndpointProviderFailure(t *testing.T) {
	searcher := &stubSearcher{err: &models.ProviderError{
		Provider:   "remotive",
		StatusCode: http.StatusBadGateway,
		Err:        errors.New("bad gateway"),
	}}

	rec := doRequest(t, newTestServer(searcher), "/api/jobs")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if !strings.Contains(payload.Error, "remotive") {
		t.Fatalf("error %q should name the provider", payload.Error)
	}
}

func TestJobsEndpointNormalizesParams(t *testing.T) {
	searcher := &stubSearcher{page: models.Page{Results: []models.Job{}}}

	doRequest(t, newTestServer(searcher), "/api/jobs?perPage=1000&page=abc&source=Remotive")

	if searcher.query.PerPage != models.MaxPerPage {
		t.Fatalf("PerPage = %d, want clamp to %d", searcher.query.PerPage, models.MaxPerPage)
	}
	if searcher.query.Page != models.DefaultPage {
		t.Fatalf("Page = %d, want default %d", searcher.query.Page, models.DefaultPage)
	}
	if searcher.query.Source != "remotive" {
		t.Fatalf("Source = %q, want remotive", searcher.query.Source)
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(&stubSearcher{}), "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}

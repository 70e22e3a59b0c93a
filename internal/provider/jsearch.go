package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Ansh3878/matrix-jobs/internal/models"
	"github.com/Ansh3878/matrix-jobs/internal/network"
)

const (
	jsearchSearchPath = "/search"
	jsearchHost       = "jsearch.p.rapidapi.com"

	// JSearch rejects empty queries, so an unspecified search falls back to
	// a broad term.
	jsearchDefaultQuery = "developer"
)

// jsearchJob is a single record in the JSearch (RapidAPI) search response.
type jsearchJob struct {
	JobID                  string   `json:"job_id"`
	JobTitle               string   `json:"job_title"`
	EmployerName           string   `json:"employer_name"`
	JobCity                string   `json:"job_city"`
	JobState               string   `json:"job_state"`
	JobCountry             string   `json:"job_country"`
	JobMinSalary           *float64 `json:"job_min_salary"`
	JobMaxSalary           *float64 `json:"job_max_salary"`
	JobEmploymentType      string   `json:"job_employment_type"`
	JobApplyLink           string   `json:"job_apply_link"`
	JobGoogleLink          string   `json:"job_google_link"`
	JobPostedAtDatetimeUTC string   `json:"job_posted_at_datetime_utc"`
	JobPostedAtTimestamp   int64    `json:"job_posted_at_timestamp"`
	JobIsRemote            bool     `json:"job_is_remote"`
	JobDescription         string   `json:"job_description"`
	JobRequiredSkills      []string `json:"job_required_skills"`
}

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// JSearch queries the JSearch API on RapidAPI. Without an API key the
// provider is disabled and contributes nothing.
type JSearch struct {
	client  *network.Client
	baseURL string
	apiKey  string
}

func NewJSearch(client *network.Client, baseURL string, apiKey string) *JSearch {
	return &JSearch{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (j *JSearch) Name() string {
	return NameJSearch
}

func (j *JSearch) Source() string {
	return "JSearch"
}

func (j *JSearch) Enabled() bool {
	return j.apiKey != ""
}

func (j *JSearch) Search(ctx context.Context, query models.Query) ([]models.Job, error) {
	if !j.Enabled() {
		return nil, nil
	}

	headers := map[string]string{
		"x-rapidapi-key":  j.apiKey,
		"x-rapidapi-host": jsearchHost,
	}

	var payload jsearchResponse
	if err := fetchJSON(ctx, j.client, NameJSearch, j.searchURL(query), headers, &payload); err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(payload.Data))
	for _, raw := range payload.Data {
		jobs = append(jobs, normalizeJSearch(raw))
	}
	return jobs, nil
}

func (j *JSearch) searchURL(query models.Query) string {
	text := query.Text
	if text == "" {
		text = jsearchDefaultQuery
	}

	values := url.Values{}
	values.Set("query", text)
	values.Set("page", strconv.Itoa(query.Page))
	values.Set("num_pages", "1")
	if query.Location != "" {
		values.Set("location", query.Location)
	}

	return j.baseURL + jsearchSearchPath + "?" + values.Encode()
}

// normalizeJSearch maps one raw JSearch record into the canonical shape.
// JSearch supplies an explicit remote flag, so no location heuristic is
// needed here.
func normalizeJSearch(raw jsearchJob) models.Job {
	location := "Remote"
	if raw.JobCity != "" {
		location = joinNonEmpty(", ", raw.JobCity, raw.JobState, raw.JobCountry)
	} else if raw.JobCountry != "" {
		location = raw.JobCountry
	}

	jobType := strings.TrimSpace(raw.JobEmploymentType)
	if jobType == "" {
		jobType = "Unknown"
	}

	applyURL := raw.JobApplyLink
	if applyURL == "" {
		applyURL = raw.JobGoogleLink
	}

	postedAt := parsePostedAt(raw.JobPostedAtDatetimeUTC)
	if postedAt == nil && raw.JobPostedAtTimestamp > 0 {
		ts := time.Unix(raw.JobPostedAtTimestamp, 0).UTC()
		postedAt = &ts
	}

	tags := raw.JobRequiredSkills
	if tags == nil {
		tags = []string{}
	}

	return models.Job{
		ID:       fmt.Sprintf("%s_%s", NameJSearch, raw.JobID),
		Title:    raw.JobTitle,
		Company:  raw.EmployerName,
		Location: location,
		Salary:   formatSalary(raw.JobMaxSalary, raw.JobMinSalary),
		Type:     jobType,
		Source:   "JSearch",
		URL:      applyURL,
		PostedAt: postedAt,
		Tags:     tags,
		IsRemote: raw.JobIsRemote,
		Snippet:  htmlSnippet(raw.JobDescription),
	}
}

// formatSalary renders the first non-nil amount as a display string. JSearch
// reports numeric min/max; the canonical model keeps a single display value.
func formatSalary(amounts ...*float64) string {
	for _, amount := range amounts {
		if amount != nil {
			return strconv.FormatFloat(*amount, 'f', -1, 64)
		}
	}
	return ""
}

func joinNonEmpty(sep string, parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		cleaned = append(cleaned, part)
	}
	return strings.Join(cleaned, sep)
}

package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Ansh3878/matrix-jobs/internal/models"
	"github.com/Ansh3878/matrix-jobs/internal/network"
)

const remotiveJobsPath = "/api/remote-jobs"

// remotiveJob is a single record in the Remotive remote-jobs API response.
type remotiveJob struct {
	ID                        int64    `json:"id"`
	URL                       string   `json:"url"`
	Title                     string   `json:"title"`
	CompanyName               string   `json:"company_name"`
	CandidateRequiredLocation string   `json:"candidate_required_location"`
	Salary                    string   `json:"salary"`
	JobType                   string   `json:"job_type"`
	PublicationDate           string   `json:"publication_date"`
	Description               string   `json:"description"`
	Tags                      []string `json:"tags"`
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

// Remotive queries the public Remotive remote-jobs API. It needs no
// credential and is always enabled.
type Remotive struct {
	client  *network.Client
	baseURL string
}

func NewRemotive(client *network.Client, baseURL string) *Remotive {
	return &Remotive{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *Remotive) Name() string {
	return NameRemotive
}

func (r *Remotive) Source() string {
	return "Remotive"
}

func (r *Remotive) Enabled() bool {
	return true
}

func (r *Remotive) Search(ctx context.Context, query models.Query) ([]models.Job, error) {
	var payload remotiveResponse
	if err := fetchJSON(ctx, r.client, NameRemotive, r.searchURL(query), nil, &payload); err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(payload.Jobs))
	for _, raw := range payload.Jobs {
		jobs = append(jobs, normalizeRemotive(raw))
	}
	return jobs, nil
}

func (r *Remotive) searchURL(query models.Query) string {
	values := url.Values{}
	if query.Text != "" {
		values.Set("search", query.Text)
	}
	if query.Location != "" {
		values.Set("location", query.Location)
	}
	if query.RemoteOnly {
		values.Set("is_remote", "true")
	}

	target := r.baseURL + remotiveJobsPath
	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

// normalizeRemotive maps one raw Remotive record into the canonical shape.
// Remotive carries no explicit remote flag; a listing with no required
// location is remote by definition, otherwise the location text decides.
func normalizeRemotive(raw remotiveJob) models.Job {
	location := strings.TrimSpace(raw.CandidateRequiredLocation)
	isRemote := true
	if location == "" {
		location = "Remote"
	} else {
		isRemote = strings.Contains(strings.ToLower(location), "remote")
	}

	jobType := strings.TrimSpace(raw.JobType)
	if jobType == "" {
		jobType = "Full-time"
	}

	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Job{
		ID:       fmt.Sprintf("%s_%d", NameRemotive, raw.ID),
		Title:    raw.Title,
		Company:  raw.CompanyName,
		Location: location,
		Salary:   strings.TrimSpace(raw.Salary),
		Type:     jobType,
		Source:   "Remotive",
		URL:      raw.URL,
		PostedAt: parsePostedAt(raw.PublicationDate),
		Tags:     tags,
		IsRemote: isRemote,
		Snippet:  htmlSnippet(raw.Description),
	}
}

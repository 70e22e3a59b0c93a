package aggregate

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Ansh3878/matrix-jobs/internal/models"
	"github.com/Ansh3878/matrix-jobs/internal/provider"
)

// Status tags the outcome of one provider dispatch. Disabled and failed are
// distinct states: a provider without credentials contributes nothing
// silently, while a failed call from an enabled provider fails the whole
// request.
type Status int

const (
	StatusDisabled Status = iota
	StatusSucceeded
	StatusFailed
)

// Outcome is the isolated result of one provider dispatch.
type Outcome struct {
	Provider string
	Status   Status
	Jobs     []models.Job
	Err      error
}

// Aggregator fans a query out to every enabled provider, merges the
// normalized listings and produces one deterministic page of results.
type Aggregator struct {
	providers []provider.Provider
	logger    zerolog.Logger
}

func New(providers []provider.Provider, logger zerolog.Logger) *Aggregator {
	return &Aggregator{providers: providers, logger: logger}
}

func (a *Aggregator) Search(ctx context.Context, query models.Query) (models.Page, error) {
	query = query.Normalized()

	outcomes := a.dispatch(ctx, query)

	var merged []models.Job
	for _, outcome := range outcomes {
		switch outcome.Status {
		case StatusDisabled:
			a.logger.Debug().Str("provider", outcome.Provider).Msg("provider disabled, skipping")
		case StatusFailed:
			a.logger.Error().Err(outcome.Err).Str("provider", outcome.Provider).Msg("provider search failed")
			return models.Page{}, outcome.Err
		case StatusSucceeded:
			a.logger.Debug().Str("provider", outcome.Provider).Int("count", len(outcome.Jobs)).Msg("provider search succeeded")
			merged = append(merged, outcome.Jobs...)
		}
	}

	sortByPostedAt(merged)

	filtered := merged
	if query.Source != models.SourceAll {
		filtered = filterBySource(filtered, query.Source)
	}
	if query.RemoteOnly {
		filtered = filterRemote(filtered)
	}
	if query.Location != "" {
		filtered = filterByLocation(filtered, query.Location)
	}

	return models.Page{
		Page:    query.Page,
		PerPage: query.PerPage,
		Total:   len(filtered),
		Source:  query.Source,
		Results: paginate(filtered, query.Page, query.PerPage),
	}, nil
}

// dispatch runs one goroutine per enabled provider and collects outcomes
// indexed by registry position, so the merge order never depends on network
// completion order. Each goroutine writes only its own slot; no locks.
func (a *Aggregator) dispatch(ctx context.Context, query models.Query) []Outcome {
	outcomes := make([]Outcome, len(a.providers))

	var wg sync.WaitGroup
	for i, p := range a.providers {
		if !p.Enabled() {
			outcomes[i] = Outcome{Provider: p.Name(), Status: StatusDisabled}
			continue
		}

		wg.Add(1)
		go func(i int, p provider.Provider) {
			defer wg.Done()
			jobs, err := p.Search(ctx, query)
			if err != nil {
				outcomes[i] = Outcome{Provider: p.Name(), Status: StatusFailed, Err: err}
				return
			}
			outcomes[i] = Outcome{Provider: p.Name(), Status: StatusSucceeded, Jobs: jobs}
		}(i, p)
	}
	wg.Wait()

	return outcomes
}

// sortByPostedAt orders listings newest first. Undated listings sort as the
// oldest, and the sort is stable so equal timestamps keep their
// concatenation order.
func sortByPostedAt(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return postedAtEpoch(jobs[i]) > postedAtEpoch(jobs[j])
	})
}

func postedAtEpoch(job models.Job) int64 {
	if job.PostedAt == nil {
		return 0
	}
	return job.PostedAt.UnixMilli()
}

func filterBySource(jobs []models.Job, source string) []models.Job {
	filtered := jobs[:0]
	for _, job := range jobs {
		if strings.EqualFold(job.Source, source) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// filterRemote keeps listings flagged remote. The location check is a
// fallback for records whose provider never set the flag.
func filterRemote(jobs []models.Job) []models.Job {
	filtered := jobs[:0]
	for _, job := range jobs {
		if job.IsRemote || containsFold(job.Location, "remote") {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func filterByLocation(jobs []models.Job, location string) []models.Job {
	filtered := jobs[:0]
	for _, job := range jobs {
		if containsFold(job.Location, location) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func containsFold(value string, needle string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

// paginate slices out the requested page. A page beyond the available data
// yields an empty slice, not an error.
func paginate(jobs []models.Job, page int, perPage int) []models.Job {
	start := (page - 1) * perPage
	if start >= len(jobs) {
		return []models.Job{}
	}

	end := start + perPage
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}

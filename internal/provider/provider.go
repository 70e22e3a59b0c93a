package provider

import (
	"context"

	"github.com/Ansh3878/matrix-jobs/internal/models"
)

const (
	NameRemotive = "remotive"
	NameJSearch  = "jsearch"
)

// Provider is one upstream job-listing source. Each implementation maps the
// canonical Query onto its own query-parameter vocabulary, performs a single
// request and normalizes the raw records into models.Job. Adding a source
// means adding one implementation; the aggregator never changes.
type Provider interface {
	// Name is the lower-case registry key matched by the source filter.
	Name() string

	// Source is the display name stamped on normalized listings.
	Source() string

	// Enabled reports whether the required configuration is present. A
	// disabled provider contributes zero listings; it is not an error.
	Enabled() bool

	// Search performs exactly one upstream call and returns normalized
	// listings. No retries.
	Search(ctx context.Context, query models.Query) ([]models.Job, error)
}

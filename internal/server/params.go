package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Ansh3878/matrix-jobs/internal/models"
)

// parseQuery coerces raw request parameters into a Query. Malformed
// pagination and filter values degrade to defaults; nothing here rejects a
// request.
func parseQuery(values url.Values) models.Query {
	query := models.DefaultQuery()

	query.Text = values.Get("q")
	query.Location = values.Get("location")

	// Remote-only is the default posture; only the literal true tokens
	// enable it explicitly.
	if remote := values.Get("remote"); remote != "" {
		query.RemoteOnly = remote == "true" || remote == "1"
	}

	// Unrecognized source names pass through lower-cased and simply match
	// nothing downstream. That permissiveness is intentional: a stale
	// filter yields an empty result set, not an error.
	if source := values.Get("source"); source != "" {
		query.Source = strings.ToLower(source)
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		query.Page = page
	}

	if perPage, err := strconv.Atoi(values.Get("perPage")); err == nil && perPage > 0 {
		query.PerPage = perPage
		if query.PerPage > models.MaxPerPage {
			query.PerPage = models.MaxPerPage
		}
	}

	return query
}

package models

import "strings"

const (
	// SourceAll disables the source filter.
	SourceAll = "all"

	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 50
)

// Query captures the normalized search inputs shared by the HTTP handler,
// the CLI and every provider. Construct once per request; never mutated.
type Query struct {
	Text       string
	Location   string
	RemoteOnly bool
	Source     string
	Page       int
	PerPage    int
}

func DefaultQuery() Query {
	return Query{
		RemoteOnly: true,
		Source:     SourceAll,
		Page:       DefaultPage,
		PerPage:    DefaultPerPage,
	}
}

// Normalized floors the page, clamps the page size into [1, MaxPerPage] and
// lower-cases the source filter. Malformed pagination degrades to defaults
// instead of failing the request.
func (q Query) Normalized() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	if q.Source == "" {
		q.Source = SourceAll
	} else {
		q.Source = strings.ToLower(q.Source)
	}
	return q
}

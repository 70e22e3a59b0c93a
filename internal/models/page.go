package models

// Page is the paginated envelope returned by the jobs endpoint. Total counts
// the filtered set before pagination so callers can do page arithmetic.
type Page struct {
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
	Total   int    `json:"total"`
	Source  string `json:"source"`
	Results []Job  `json:"results"`
}

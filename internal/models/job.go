package models

import "time"

// Job is the canonical listing produced by every provider. The ID carries a
// provider prefix (e.g. "remotive_123") so listings from different sources
// never collide even when their native ID spaces overlap.
type Job struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Company  string     `json:"company"`
	Location string     `json:"location"`
	Salary   string     `json:"salary,omitempty"`
	Type     string     `json:"type"`
	Source   string     `json:"source"`
	URL      string     `json:"url"`
	PostedAt *time.Time `json:"postedAt"`
	Tags     []string   `json:"tags"`
	IsRemote bool       `json:"isRemote"`
	Snippet  string     `json:"snippet,omitempty"`
}

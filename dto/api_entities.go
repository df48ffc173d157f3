package dto

import "time"

type DigestStatus struct {
	GeneratedAt   time.Time `json:"generated_at"`
	FeaturedCount int       `json:"featured_count"`
	MoreCount     int       `json:"more_count"`
	SourceCount   int       `json:"source_count"`
	LastError     string    `json:"last_error,omitempty"`
}

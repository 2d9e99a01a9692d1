package models

import "time"

// CommunityEvent is an upcoming volunteer or distribution event.
type CommunityEvent struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
}

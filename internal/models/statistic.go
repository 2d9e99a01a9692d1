package models

import "time"

// Statistic is a named counter shown on the landing page (e.g. "total_raised").
// Values are refreshed periodically by the scheduler from the live tables.
type Statistic struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Value     float64   `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// SupplyPost is a relief supply offer published on the platform.
type SupplyPost struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

// Donor is a leaderboard entry; Donation is the cumulative amount donated.
type Donor struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Donation float64 `json:"donation"`
}

package models

import "time"

// Trip is a single ride entry. Duration and Mood are optional; a zero
// Duration counts as zero hours in the dashboard aggregates.
type Trip struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"startDate"`
	Distance  float64   `json:"distance"`
	Duration  float64   `json:"duration,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// Waypoint is a map marker, optionally tied to a trip by TripID. Relations
// are soft: deleting a trip does not cascade to its waypoints.
type Waypoint struct {
	ID        string    `json:"id"`
	TripID    string    `json:"tripId,omitempty"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// Restaurant venue types.
const (
	RestaurantPizza       = "pizza"
	RestaurantTraditional = "traditional"
	RestaurantQuick       = "quick"
	RestaurantGourmet     = "gourmet"
	RestaurantBar         = "bar"
)

// Rating bounds for a restaurant entry.
const (
	RatingMin = 1
	RatingMax = 5
)

// Restaurant is a point of interest in the explorer domain. Lat and Lng are
// either both set or both nil; entries without coordinates never appear in
// map or nearby results.
type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
	Rating    int       `json:"rating"`
	Notes     string    `json:"notes,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasCoordinates reports whether the entry carries a usable position.
func (r Restaurant) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}

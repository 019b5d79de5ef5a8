package models

import "time"

// ProfileID is the fixed key the singleton rider profile is stored under.
// There is exactly one profile per installation.
const ProfileID = "main-profile"

// Profile describes the rider and the bike the logbook tracks. CurrentKm is
// the odometer reading at the moment the profile was configured; all later
// trip distances are added on top of this baseline.
type Profile struct {
	ID          string    `json:"id"`
	RiderName   string    `json:"riderName"`
	BikeModel   string    `json:"bikeModel"`
	BikeYear    int       `json:"bikeYear"`
	CurrentKm   float64   `json:"currentKm"`
	PlateNumber string    `json:"plateNumber"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

package models

import "time"

// Maintenance entry types.
const (
	MaintenanceService = "service"
	MaintenanceTire    = "tire"
	MaintenanceBrake   = "brake"
	MaintenanceChain   = "chain"
	MaintenanceOil     = "oil"
	MaintenanceOther   = "other"
)

// MaintenanceEntry records one workshop intervention. Km is the odometer
// reading at service time and should not be below the profile baseline,
// though this is advisory and never enforced. Cost defaults to 0.
type MaintenanceEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	Km        float64   `json:"km"`
	Cost      float64   `json:"cost"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// FuelEntry records one refuelling stop. TotalCost is computed once at write
// time as Liters × PricePerLiter and is not re-validated afterwards.
type FuelEntry struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Km            float64   `json:"km"`
	Liters        float64   `json:"liters"`
	PricePerLiter float64   `json:"pricePerLiter"`
	TotalCost     float64   `json:"totalCost"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

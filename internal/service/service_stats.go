package service

import (
	"math"

	"github.com/pbianchi/moto-soul/models"
)

// ServiceIntervalKm is the workshop service interval: a full service is due
// at every multiple of this distance.
const ServiceIntervalKm = 10000

// Dashboard aggregations. All functions in this file are pure: they operate
// on lists already fetched from the repositories and never touch storage.

// TotalDistance sums the distance of all trips, in km.
func TotalDistance(trips []models.Trip) float64 {
	var total float64
	for _, t := range trips {
		total += t.Distance
	}

	return total
}

// TripCount returns the number of recorded trips.
func TripCount(trips []models.Trip) int {
	return len(trips)
}

// TotalHours sums trip durations; trips without a duration count as zero.
func TotalHours(trips []models.Trip) float64 {
	var total float64
	for _, t := range trips {
		total += t.Duration
	}

	return total
}

// CurrentOdometer derives the present odometer reading from the profile
// baseline plus all recorded trip distances. A nil (unconfigured) profile
// contributes a zero baseline.
func CurrentOdometer(profile *models.Profile, trips []models.Trip) float64 {
	var baseline float64
	if profile != nil {
		baseline = profile.CurrentKm
	}

	return baseline + TotalDistance(trips)
}

// TotalMaintenanceCost sums the cost of all maintenance entries.
func TotalMaintenanceCost(entries []models.MaintenanceEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Cost
	}

	return total
}

// TotalLiters sums the fuel volume of all refuelling stops.
func TotalLiters(entries []models.FuelEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Liters
	}

	return total
}

// TotalFuelCost sums the total cost of all refuelling stops.
func TotalFuelCost(entries []models.FuelEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.TotalCost
	}

	return total
}

// AverageFuelConsumption computes fuel economy in liters per 100 km.
//
// The figure is only meaningful with at least two refuelling stops and a
// positive total distance; otherwise ok is false and the dashboard shows
// "not available" instead of a nonsense value such as +Inf.
func AverageFuelConsumption(entries []models.FuelEntry, totalDistance float64) (float64, bool) {
	if len(entries) < 2 || totalDistance <= 0 {
		return 0, false
	}

	return TotalLiters(entries) / totalDistance * 100, true
}

// LastService returns the most recent full-service entry. Entries are
// expected in the repository's date-descending order, so the first match
// wins.
func LastService(entries []models.MaintenanceEntry) (models.MaintenanceEntry, bool) {
	for _, e := range entries {
		if e.Type == models.MaintenanceService {
			return e, true
		}
	}

	return models.MaintenanceEntry{}, false
}

// ServiceForecast is the result of [NextServiceDue].
type ServiceForecast struct {
	// LastServiceKm is the odometer reading of the most recent service.
	LastServiceKm float64

	// NextServiceKm is LastServiceKm rounded up to the next service
	// interval multiple.
	NextServiceKm float64

	// RemainingKm is the distance left until the next service. Negative
	// when the service is overdue; the sign is preserved, never clamped.
	RemainingKm float64
}

// NextServiceDue forecasts the next full service from the maintenance
// history (in date-descending order) and the current odometer reading.
// ok is false when no service entry exists yet.
func NextServiceDue(entries []models.MaintenanceEntry, currentOdometer float64) (ServiceForecast, bool) {
	last, ok := LastService(entries)
	if !ok {
		return ServiceForecast{}, false
	}

	nextServiceKm := math.Ceil(last.Km/ServiceIntervalKm) * ServiceIntervalKm

	return ServiceForecast{
		LastServiceKm: last.Km,
		NextServiceKm: nextServiceKm,
		RemainingKm:   nextServiceKm - currentOdometer,
	}, true
}

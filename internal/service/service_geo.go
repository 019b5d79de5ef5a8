package service

import (
	"math"

	"github.com/pbianchi/moto-soul/models"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371

	// NearbyRadiusKm bounds the "nearby" filter. The boundary is exclusive:
	// an entry exactly this far away is not nearby.
	NearbyRadiusKm = 50
)

// HaversineKm returns the great-circle distance between two coordinate
// pairs, in km.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// NearbyRestaurants filters the given restaurants down to those strictly
// within [NearbyRadiusKm] of the position. Entries without coordinates are
// never nearby.
func NearbyRestaurants(restaurants []models.Restaurant, lat, lng float64) []models.Restaurant {
	var nearby []models.Restaurant
	for _, r := range restaurants {
		if !r.HasCoordinates() {
			continue
		}
		if HaversineKm(lat, lng, *r.Lat, *r.Lng) < NearbyRadiusKm {
			nearby = append(nearby, r)
		}
	}

	return nearby
}

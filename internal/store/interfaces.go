package store

import (
	"context"

	"github.com/pbianchi/moto-soul/models"
)

// RecordStore is the generic keyed-record persistence facade. Records are
// opaque JSON payloads grouped into named collections and keyed by a string
// id unique within the collection. Every operation is atomic with respect to
// the single record or collection it touches; there are no multi-collection
// transactions.
//
// ListAll and ListByField return payloads in insertion order. Sorting by
// domain fields is a repository concern.
type RecordStore interface {
	Add(ctx context.Context, collection, id string, payload []byte) error
	Get(ctx context.Context, collection, id string) ([]byte, error)
	ListAll(ctx context.Context, collection string) ([][]byte, error)
	ListByField(ctx context.Context, collection, field string, value any) ([][]byte, error)
	Update(ctx context.Context, collection, id string, payload []byte) error
	Delete(ctx context.Context, collection, id string) error
	Clear(ctx context.Context, collection string) error
	Count(ctx context.Context, collection string) (int64, error)
}

// LogbookRepository is the typed layer over the logbook domain's record
// store. Add methods assign a fresh unique id and a creation timestamp and
// return the stored record; GetAll methods apply the domain sort orders.
type LogbookRepository interface {
	SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	// GetProfile returns nil without error when no profile is configured yet.
	GetProfile(ctx context.Context) (*models.Profile, error)

	AddTrip(ctx context.Context, trip models.Trip) (models.Trip, error)
	GetAllTrips(ctx context.Context) ([]models.Trip, error)
	DeleteTrip(ctx context.Context, id string) error
	ClearTrips(ctx context.Context) error

	AddMaintenance(ctx context.Context, entry models.MaintenanceEntry) (models.MaintenanceEntry, error)
	GetAllMaintenance(ctx context.Context) ([]models.MaintenanceEntry, error)
	GetMaintenanceByType(ctx context.Context, maintenanceType string) ([]models.MaintenanceEntry, error)
	DeleteMaintenance(ctx context.Context, id string) error
	ClearMaintenance(ctx context.Context) error

	AddFuel(ctx context.Context, entry models.FuelEntry) (models.FuelEntry, error)
	GetAllFuel(ctx context.Context) ([]models.FuelEntry, error)
	DeleteFuel(ctx context.Context, id string) error
	ClearFuel(ctx context.Context) error

	// RestoreTrip and friends re-insert an exported record as stored,
	// keeping its id and creation timestamp. Used only by snapshot import.
	RestoreTrip(ctx context.Context, trip models.Trip) error
	RestoreMaintenance(ctx context.Context, entry models.MaintenanceEntry) error
	RestoreFuel(ctx context.Context, entry models.FuelEntry) error
}

// ExplorerRepository is the typed layer over the explorer domain's record
// store.
type ExplorerRepository interface {
	AddRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (models.Restaurant, error)
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurantsByType(ctx context.Context, restaurantType string) ([]models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) error
	ClearRestaurants(ctx context.Context) error

	AddLink(ctx context.Context, link models.Link) (models.Link, error)
	GetAllLinks(ctx context.Context) ([]models.Link, error)
	DeleteLink(ctx context.Context, id string) error
	ClearLinks(ctx context.Context) error

	AddWaypoint(ctx context.Context, wp models.Waypoint) (models.Waypoint, error)
	GetAllWaypoints(ctx context.Context) ([]models.Waypoint, error)
	GetWaypointsByTrip(ctx context.Context, tripID string) ([]models.Waypoint, error)
	DeleteWaypoint(ctx context.Context, id string) error
	ClearWaypoints(ctx context.Context) error

	AddEmergencyContact(ctx context.Context, c models.EmergencyContact) (models.EmergencyContact, error)
	GetAllEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error)
	DeleteEmergencyContact(ctx context.Context, id string) error
	ClearEmergencyContacts(ctx context.Context) error
	// EnsureDefaultContacts seeds the fixed default contacts into an empty
	// contacts collection. A store that already holds contacts is untouched.
	EnsureDefaultContacts(ctx context.Context) error

	SaveToolPref(ctx context.Context, pref models.ToolPref) (models.ToolPref, error)
	GetToolPref(ctx context.Context, toolName string) (models.ToolPref, error)
	GetAllToolPrefs(ctx context.Context) ([]models.ToolPref, error)

	RestoreRestaurant(ctx context.Context, r models.Restaurant) error
	RestoreLink(ctx context.Context, link models.Link) error
	RestoreWaypoint(ctx context.Context, wp models.Waypoint) error
	RestoreEmergencyContact(ctx context.Context, c models.EmergencyContact) error
}

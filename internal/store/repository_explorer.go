package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pbianchi/moto-soul/internal/logger"
	"github.com/pbianchi/moto-soul/models"
)

type explorerRepository struct {
	records RecordStore
	ids     IDGenerator
	logger  *logger.Logger
}

// NewExplorerRepository builds the typed explorer repository on top of a
// record store.
func NewExplorerRepository(records RecordStore, logger *logger.Logger) ExplorerRepository {
	return &explorerRepository{
		records: records,
		ids:     NewUUIDGenerator(),
		logger:  logger,
	}
}

func validateRestaurant(r models.Restaurant) error {
	if r.Rating < models.RatingMin || r.Rating > models.RatingMax {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidRecord, models.RatingMin, models.RatingMax)
	}

	// coordinates come in pairs: a lone lat or lng is a form bug upstream
	if (r.Lat == nil) != (r.Lng == nil) {
		return fmt.Errorf("%w: lat and lng must both be set or both be absent", ErrInvalidRecord)
	}

	return nil
}

func (r *explorerRepository) AddRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	if err := validateRestaurant(restaurant); err != nil {
		return models.Restaurant{}, err
	}

	restaurant.ID = r.ids.Generate(restaurantIDPrefix)
	restaurant.CreatedAt = time.Now().UTC()

	payload, err := encodeRecord(restaurant)
	if err != nil {
		return models.Restaurant{}, err
	}

	if err := r.records.Add(ctx, collectionRestaurants, restaurant.ID, payload); err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to add restaurant: %w", err)
	}

	return restaurant, nil
}

func (r *explorerRepository) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	payload, err := r.records.Get(ctx, collectionRestaurants, id)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return decodeRecord[models.Restaurant](payload)
}

func (r *explorerRepository) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	payloads, err := r.records.ListAll(ctx, collectionRestaurants)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	restaurants, err := decodeRecords[models.Restaurant](payloads)
	if err != nil {
		return nil, err
	}

	// best rated first; ties keep insertion order
	sort.SliceStable(restaurants, func(i, j int) bool {
		return restaurants[i].Rating > restaurants[j].Rating
	})

	return restaurants, nil
}

func (r *explorerRepository) GetRestaurantsByType(ctx context.Context, restaurantType string) ([]models.Restaurant, error) {
	payloads, err := r.records.ListByField(ctx, collectionRestaurants, "type", restaurantType)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants by type: %w", err)
	}

	return decodeRecords[models.Restaurant](payloads)
}

func (r *explorerRepository) DeleteRestaurant(ctx context.Context, id string) error {
	return r.records.Delete(ctx, collectionRestaurants, id)
}

func (r *explorerRepository) ClearRestaurants(ctx context.Context) error {
	return r.records.Clear(ctx, collectionRestaurants)
}

func (r *explorerRepository) RestoreRestaurant(ctx context.Context, restaurant models.Restaurant) error {
	payload, err := encodeRecord(restaurant)
	if err != nil {
		return err
	}

	if err := r.records.Add(ctx, collectionRestaurants, restaurant.ID, payload); err != nil {
		return fmt.Errorf("failed to restore restaurant %s: %w", restaurant.ID, err)
	}

	return nil
}

func (r *explorerRepository) AddLink(ctx context.Context, link models.Link) (models.Link, error) {
	link.ID = r.ids.Generate(linkIDPrefix)
	link.CreatedAt = time.Now().UTC()

	payload, err := encodeRecord(link)
	if err != nil {
		return models.Link{}, err
	}

	if err := r.records.Add(ctx, collectionLinks, link.ID, payload); err != nil {
		return models.Link{}, fmt.Errorf("failed to add link: %w", err)
	}

	return link, nil
}

func (r *explorerRepository) GetAllLinks(ctx context.Context) ([]models.Link, error) {
	payloads, err := r.records.ListAll(ctx, collectionLinks)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	links, err := decodeRecords[models.Link](payloads)
	if err != nil {
		return nil, err
	}

	// category groups the list, name orders within a category
	sort.SliceStable(links, func(i, j int) bool {
		if links[i].Category == links[j].Category {
			return strings.Compare(links[i].Name, links[j].Name) < 0
		}
		return strings.Compare(links[i].Category, links[j].Category) < 0
	})

	return links, nil
}

func (r *explorerRepository) DeleteLink(ctx context.Context, id string) error {
	return r.records.Delete(ctx, collectionLinks, id)
}

func (r *explorerRepository) ClearLinks(ctx context.Context) error {
	return r.records.Clear(ctx, collectionLinks)
}

func (r *explorerRepository) RestoreLink(ctx context.Context, link models.Link) error {
	payload, err := encodeRecord(link)
	if err != nil {
		return err
	}

	if err := r.records.Add(ctx, collectionLinks, link.ID, payload); err != nil {
		return fmt.Errorf("failed to restore link %s: %w", link.ID, err)
	}

	return nil
}

func (r *explorerRepository) AddWaypoint(ctx context.Context, wp models.Waypoint) (models.Waypoint, error) {
	wp.ID = r.ids.Generate(waypointIDPrefix)
	wp.CreatedAt = time.Now().UTC()

	payload, err := encodeRecord(wp)
	if err != nil {
		return models.Waypoint{}, err
	}

	if err := r.records.Add(ctx, collectionWaypoints, wp.ID, payload); err != nil {
		return models.Waypoint{}, fmt.Errorf("failed to add waypoint: %w", err)
	}

	return wp, nil
}

func (r *explorerRepository) GetAllWaypoints(ctx context.Context) ([]models.Waypoint, error) {
	payloads, err := r.records.ListAll(ctx, collectionWaypoints)
	if err != nil {
		return nil, fmt.Errorf("failed to list waypoints: %w", err)
	}

	return decodeRecords[models.Waypoint](payloads)
}

func (r *explorerRepository) GetWaypointsByTrip(ctx context.Context, tripID string) ([]models.Waypoint, error) {
	payloads, err := r.records.ListByField(ctx, collectionWaypoints, "tripId", tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list waypoints by trip: %w", err)
	}

	return decodeRecords[models.Waypoint](payloads)
}

func (r *explorerRepository) DeleteWaypoint(ctx context.Context, id string) error {
	return r.records.Delete(ctx, collectionWaypoints, id)
}

func (r *explorerRepository) ClearWaypoints(ctx context.Context) error {
	return r.records.Clear(ctx, collectionWaypoints)
}

func (r *explorerRepository) RestoreWaypoint(ctx context.Context, wp models.Waypoint) error {
	payload, err := encodeRecord(wp)
	if err != nil {
		return err
	}

	if err := r.records.Add(ctx, collectionWaypoints, wp.ID, payload); err != nil {
		return fmt.Errorf("failed to restore waypoint %s: %w", wp.ID, err)
	}

	return nil
}

func (r *explorerRepository) AddEmergencyContact(ctx context.Context, c models.EmergencyContact) (models.EmergencyContact, error) {
	c.ID = r.ids.Generate(contactIDPrefix)

	payload, err := encodeRecord(c)
	if err != nil {
		return models.EmergencyContact{}, err
	}

	if err := r.records.Add(ctx, collectionContacts, c.ID, payload); err != nil {
		return models.EmergencyContact{}, fmt.Errorf("failed to add emergency contact: %w", err)
	}

	return c, nil
}

func (r *explorerRepository) GetAllEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	payloads, err := r.records.ListAll(ctx, collectionContacts)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}

	contacts, err := decodeRecords[models.EmergencyContact](payloads)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return strings.Compare(contacts[i].Name, contacts[j].Name) < 0
	})

	return contacts, nil
}

func (r *explorerRepository) DeleteEmergencyContact(ctx context.Context, id string) error {
	return r.records.Delete(ctx, collectionContacts, id)
}

func (r *explorerRepository) ClearEmergencyContacts(ctx context.Context) error {
	return r.records.Clear(ctx, collectionContacts)
}

func (r *explorerRepository) RestoreEmergencyContact(ctx context.Context, c models.EmergencyContact) error {
	payload, err := encodeRecord(c)
	if err != nil {
		return err
	}

	if err := r.records.Add(ctx, collectionContacts, c.ID, payload); err != nil {
		return fmt.Errorf("failed to restore emergency contact %s: %w", c.ID, err)
	}

	return nil
}

// EnsureDefaultContacts seeds the fixed default contacts on first run. An
// installation that already holds any contact, including one where the user
// deleted some defaults, is left untouched.
func (r *explorerRepository) EnsureDefaultContacts(ctx context.Context) error {
	log := logger.FromContext(ctx)

	n, err := r.records.Count(ctx, collectionContacts)
	if err != nil {
		return fmt.Errorf("failed to count emergency contacts: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, c := range models.DefaultEmergencyContacts() {
		payload, err := encodeRecord(c)
		if err != nil {
			return err
		}
		if err := r.records.Add(ctx, collectionContacts, c.ID, payload); err != nil {
			log.Err(err).
				Str("func", "explorerRepository.EnsureDefaultContacts").
				Str("record_id", c.ID).
				Msg("failed to seed default emergency contact")
			return fmt.Errorf("failed to seed default contact %s: %w", c.ID, err)
		}
	}

	return nil
}

func (r *explorerRepository) SaveToolPref(ctx context.Context, pref models.ToolPref) (models.ToolPref, error) {
	if pref.ToolName == "" {
		return models.ToolPref{}, fmt.Errorf("%w: tool name is required", ErrInvalidRecord)
	}

	// the tool name doubles as the record id so a repeated save overwrites
	pref.ID = pref.ToolName

	payload, err := encodeRecord(pref)
	if err != nil {
		return models.ToolPref{}, err
	}

	if err := r.records.Update(ctx, collectionToolPrefs, pref.ID, payload); err != nil {
		return models.ToolPref{}, fmt.Errorf("failed to save tool pref: %w", err)
	}

	return pref, nil
}

func (r *explorerRepository) GetToolPref(ctx context.Context, toolName string) (models.ToolPref, error) {
	payload, err := r.records.Get(ctx, collectionToolPrefs, toolName)
	if err != nil {
		return models.ToolPref{}, fmt.Errorf("failed to get tool pref: %w", err)
	}

	return decodeRecord[models.ToolPref](payload)
}

func (r *explorerRepository) GetAllToolPrefs(ctx context.Context) ([]models.ToolPref, error) {
	payloads, err := r.records.ListAll(ctx, collectionToolPrefs)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool prefs: %w", err)
	}

	return decodeRecords[models.ToolPref](payloads)
}

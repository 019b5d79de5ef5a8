package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pbianchi/moto-soul/internal/logger"
	"github.com/pbianchi/moto-soul/models"
)

type logbookRepository struct {
	records RecordStore
	ids     IDGenerator
	logger  *logger.Logger
}

// NewLogbookRepository builds the typed logbook repository on top of a
// record store.
func NewLogbookRepository(records RecordStore, logger *logger.Logger) LogbookRepository {
	return &logbookRepository{
		records: records,
		ids:     NewUUIDGenerator(),
		logger:  logger,
	}
}

func (r *logbookRepository) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if profile.CurrentKm < 0 {
		return models.Profile{}, fmt.Errorf("%w: currentKm must not be negative", ErrInvalidRecord)
	}

	// wholesale overwrite under the fixed singleton id
	profile.ID = models.ProfileID
	profile.UpdatedAt = time.Now().UTC()

	payload, err := encodeRecord(profile)
	if err != nil {
		return models.Profile{}, err
	}

	if err := r.records.Update(ctx, collectionProfile, profile.ID, payload); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

func (r *logbookRepository) GetProfile(ctx context.Context) (*models.Profile, error) {
	payload, err := r.records.Get(ctx, collectionProfile, models.ProfileID)
	if errors.Is(err, ErrRecordNotFound) {
		// first-run state: no profile configured yet
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile, err := decodeRecord[models.Profile](payload)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *logbookRepository) AddTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	if trip.Distance < 0 {
		return models.Trip{}, fmt.Errorf("%w: distance must not be negative", ErrInvalidRecord)
	}
	if trip.Duration < 0 {
		return models.Trip{}, fmt.Errorf("%w: duration must not be negative", ErrInvalidRecord)
	}

	trip.ID = r.ids.Generate(tripIDPrefix)
	trip.CreatedAt = time.Now().UTC()

	payload, err := encodeRecord(trip)
	if err != nil {
		return models.Trip{}, err
	}

	if err := r.records.Add(ctx, collectionTrips, trip.ID, payload); err != nil {
		return models.Trip{}, fmt.Errorf("failed to add trip: %w", err)
	}

	return trip, nil
}

func (r *logbookRepository) GetAllTrips(ctx context.Context) ([]models.Trip, error) {
	payloads, err := r.records.ListAll(ctx, collectionTrips)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	trips, err := decodeRecords[models.Trip](payloads)
	if err != nil {
		return nil, err
	}

	// most recent first; ties keep insertion order
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].StartDate.After(trips[j].StartDate)
	})

	return trips, nil
}

func (r *logbookRepository) DeleteTrip(ctx context.Context, id string) error {
	return r.records.Delete(ctx, collectionTrips, id)
}

func (r *logbookRepository) ClearTrips(ctx context.Context) error {
	return r.records.Clear(ctx, collectionTrips)
}

func (r *logbookRepository) RestoreTrip(ctx context.Context, trip models.Trip) error {
	payload, err := encodeRecord(trip)
	if err != nil {
		return err
	}

	if err := r.records.Add(ctx, collectionTrips, trip.ID, payload); err != nil {
		return fmt.Errorf("failed to restore trip %s: %w", trip.ID, err)
	}

	return nil
}

func (r *logbookRepository) AddMaintenance(ctx context.Context, entry models.MaintenanceEntry) (models.MaintenanceEntry, error) {
	if entry.Km < 0 || entry.Cost < 0 {
		return models.MaintenanceEntry{}, fmt.Errorf("%w: km and cost must not be negative", ErrInvalidRecord)
	}

	entry.ID = r.ids.Generate(maintenanceIDPrefix)
	entry.CreatedAt = time.Now().UTC()

	payload, err := encodeRecord(entry)
	if err != nil {
		return models.MaintenanceEntry{}, err
	}

	if err := r.records.Add(ctx, collectionMaintenance, entry.ID, payload); err != nil {
		return models.MaintenanceEntry{}, fmt.Errorf("failed to add maintenance entry: %w", err)
	}

	return entry, nil
}

func (r *logbookRepository) GetAllMaintenance(ctx context.Context) ([]models.MaintenanceEntry, error) {
	payloads, err := r.records.ListAll(ctx, collectionMaintenance)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance entries: %w", err)
	}

	entries, err := decodeRecords[models.MaintenanceEntry](payloads)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries, nil
}

func (r *logbookRepository) GetMaintenanceByType(ctx context.Context, maintenanceType string) ([]models.MaintenanceEntry, error) {
	payloads, err := r.records.ListByField(ctx, collectionMaintenance, "type", maintenanceType)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance entries by type: %w", err)
	}

	return decodeRecords[models.MaintenanceEntry](payloads)
}

func (r *logbookRepository) DeleteMaintenance(ctx context.Context, id string) error {
	return r.records.Delete(ctx, collectionMaintenance, id)
}

func (r *logbookRepository) ClearMaintenance(ctx context.Context) error {
	return r.records.Clear(ctx, collectionMaintenance)
}

func (r *logbookRepository) RestoreMaintenance(ctx context.Context, entry models.MaintenanceEntry) error {
	payload, err := encodeRecord(entry)
	if err != nil {
		return err
	}

	if err := r.records.Add(ctx, collectionMaintenance, entry.ID, payload); err != nil {
		return fmt.Errorf("failed to restore maintenance entry %s: %w", entry.ID, err)
	}

	return nil
}

func (r *logbookRepository) AddFuel(ctx context.Context, entry models.FuelEntry) (models.FuelEntry, error) {
	if entry.Km < 0 || entry.Liters < 0 || entry.PricePerLiter < 0 {
		return models.FuelEntry{}, fmt.Errorf("%w: km, liters and price must not be negative", ErrInvalidRecord)
	}

	entry.ID = r.ids.Generate(fuelIDPrefix)
	entry.CreatedAt = time.Now().UTC()
	// computed once at write time, never re-validated
	entry.TotalCost = entry.Liters * entry.PricePerLiter

	payload, err := encodeRecord(entry)
	if err != nil {
		return models.FuelEntry{}, err
	}

	if err := r.records.Add(ctx, collectionFuel, entry.ID, payload); err != nil {
		return models.FuelEntry{}, fmt.Errorf("failed to add fuel entry: %w", err)
	}

	return entry, nil
}

func (r *logbookRepository) GetAllFuel(ctx context.Context) ([]models.FuelEntry, error) {
	payloads, err := r.records.ListAll(ctx, collectionFuel)
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel entries: %w", err)
	}

	entries, err := decodeRecords[models.FuelEntry](payloads)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries, nil
}

func (r *logbookRepository) DeleteFuel(ctx context.Context, id string) error {
	return r.records.Delete(ctx, collectionFuel, id)
}

func (r *logbookRepository) ClearFuel(ctx context.Context) error {
	return r.records.Clear(ctx, collectionFuel)
}

func (r *logbookRepository) RestoreFuel(ctx context.Context, entry models.FuelEntry) error {
	payload, err := encodeRecord(entry)
	if err != nil {
		return err
	}

	if err := r.records.Add(ctx, collectionFuel, entry.ID, payload); err != nil {
		return fmt.Errorf("failed to restore fuel entry %s: %w", entry.ID, err)
	}

	return nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pbianchi/moto-soul/internal/logger"
	"github.com/pbianchi/moto-soul/internal/store"
	"github.com/pbianchi/moto-soul/models"
)

type logbookBackupService struct {
	repository store.LogbookRepository
	appVersion string

	logger *logger.Logger
}

// NewLogbookBackupService builds the logbook export/import codec. appVersion
// is stamped into every exported snapshot.
func NewLogbookBackupService(repository store.LogbookRepository, appVersion string, logger *logger.Logger) LogbookBackupService {
	return &logbookBackupService{
		repository: repository,
		appVersion: appVersion,
		logger:     logger,
	}
}

func (s *logbookBackupService) Export(ctx context.Context) (models.LogbookSnapshot, error) {
	profile, err := s.repository.GetProfile(ctx)
	if err != nil {
		return models.LogbookSnapshot{}, fmt.Errorf("export profile: %w", err)
	}

	trips, err := s.repository.GetAllTrips(ctx)
	if err != nil {
		return models.LogbookSnapshot{}, fmt.Errorf("export trips: %w", err)
	}

	maintenance, err := s.repository.GetAllMaintenance(ctx)
	if err != nil {
		return models.LogbookSnapshot{}, fmt.Errorf("export maintenance: %w", err)
	}

	fuel, err := s.repository.GetAllFuel(ctx)
	if err != nil {
		return models.LogbookSnapshot{}, fmt.Errorf("export fuel: %w", err)
	}

	return models.LogbookSnapshot{
		ExportDate:  time.Now().UTC().Format(time.RFC3339),
		AppVersion:  s.appVersion,
		Profile:     profile,
		Trips:       trips,
		Maintenance: maintenance,
		Fuel:        fuel,
	}, nil
}

// Import applies a snapshot with replace semantics for the list collections
// and upsert semantics for the profile. The clear-then-insert sequence is
// not atomic across collections: a mid-import failure leaves the collections
// already restored in place and is reported as [ErrImportFailed].
func (s *logbookBackupService) Import(ctx context.Context, snapshot models.LogbookSnapshot) error {
	log := logger.FromContext(ctx)

	err := s.importAll(ctx, snapshot)
	if err != nil {
		log.Err(err).
			Str("func", "logbookBackupService.Import").
			Msg("failed to import logbook snapshot")
		return fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	return nil
}

func (s *logbookBackupService) importAll(ctx context.Context, snapshot models.LogbookSnapshot) error {
	if err := s.repository.ClearTrips(ctx); err != nil {
		return err
	}
	if err := s.repository.ClearMaintenance(ctx); err != nil {
		return err
	}
	if err := s.repository.ClearFuel(ctx); err != nil {
		return err
	}

	if snapshot.Profile != nil {
		if _, err := s.repository.SaveProfile(ctx, *snapshot.Profile); err != nil {
			return err
		}
	}

	for _, trip := range snapshot.Trips {
		if err := s.repository.RestoreTrip(ctx, trip); err != nil {
			return err
		}
	}

	for _, entry := range snapshot.Maintenance {
		if err := s.repository.RestoreMaintenance(ctx, entry); err != nil {
			return err
		}
	}

	for _, entry := range snapshot.Fuel {
		if err := s.repository.RestoreFuel(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}

type explorerBackupService struct {
	repository store.ExplorerRepository
	appVersion string

	logger *logger.Logger
}

// NewExplorerBackupService builds the explorer export/import codec.
func NewExplorerBackupService(repository store.ExplorerRepository, appVersion string, logger *logger.Logger) ExplorerBackupService {
	return &explorerBackupService{
		repository: repository,
		appVersion: appVersion,
		logger:     logger,
	}
}

func (s *explorerBackupService) Export(ctx context.Context) (models.ExplorerSnapshot, error) {
	restaurants, err := s.repository.GetAllRestaurants(ctx)
	if err != nil {
		return models.ExplorerSnapshot{}, fmt.Errorf("export restaurants: %w", err)
	}

	links, err := s.repository.GetAllLinks(ctx)
	if err != nil {
		return models.ExplorerSnapshot{}, fmt.Errorf("export links: %w", err)
	}

	waypoints, err := s.repository.GetAllWaypoints(ctx)
	if err != nil {
		return models.ExplorerSnapshot{}, fmt.Errorf("export waypoints: %w", err)
	}

	contacts, err := s.repository.GetAllEmergencyContacts(ctx)
	if err != nil {
		return models.ExplorerSnapshot{}, fmt.Errorf("export emergency contacts: %w", err)
	}

	prefs, err := s.repository.GetAllToolPrefs(ctx)
	if err != nil {
		return models.ExplorerSnapshot{}, fmt.Errorf("export tool prefs: %w", err)
	}

	return models.ExplorerSnapshot{
		ExportDate:        time.Now().UTC().Format(time.RFC3339),
		AppVersion:        s.appVersion,
		Restaurants:       restaurants,
		Links:             links,
		Waypoints:         waypoints,
		EmergencyContacts: contacts,
		ToolPrefs:         prefs,
	}, nil
}

// Import applies a snapshot with replace semantics for the list collections
// and upsert semantics for tool preferences. Same non-atomicity caveat as
// the logbook import.
func (s *explorerBackupService) Import(ctx context.Context, snapshot models.ExplorerSnapshot) error {
	log := logger.FromContext(ctx)

	err := s.importAll(ctx, snapshot)
	if err != nil {
		log.Err(err).
			Str("func", "explorerBackupService.Import").
			Msg("failed to import explorer snapshot")
		return fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	return nil
}

func (s *explorerBackupService) importAll(ctx context.Context, snapshot models.ExplorerSnapshot) error {
	if err := s.repository.ClearRestaurants(ctx); err != nil {
		return err
	}
	if err := s.repository.ClearLinks(ctx); err != nil {
		return err
	}
	if err := s.repository.ClearWaypoints(ctx); err != nil {
		return err
	}
	if err := s.repository.ClearEmergencyContacts(ctx); err != nil {
		return err
	}

	for _, r := range snapshot.Restaurants {
		if err := s.repository.RestoreRestaurant(ctx, r); err != nil {
			return err
		}
	}

	for _, link := range snapshot.Links {
		if err := s.repository.RestoreLink(ctx, link); err != nil {
			return err
		}
	}

	for _, wp := range snapshot.Waypoints {
		if err := s.repository.RestoreWaypoint(ctx, wp); err != nil {
			return err
		}
	}

	for _, c := range snapshot.EmergencyContacts {
		if err := s.repository.RestoreEmergencyContact(ctx, c); err != nil {
			return err
		}
	}

	for _, pref := range snapshot.ToolPrefs {
		if _, err := s.repository.SaveToolPref(ctx, pref); err != nil {
			return err
		}
	}

	return nil
}

// EncodeSnapshot serialises a snapshot the way the export download is
// written: indented JSON, stable field order.
func EncodeSnapshot(snapshot any) ([]byte, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return data, nil
}

// DecodeSnapshot parses a snapshot file into out (a *models.LogbookSnapshot
// or *models.ExplorerSnapshot).
//
// Collection fields with the wrong JSON type are tolerated: they stay empty
// and the import skips them, matching the lenient handling of hand-edited
// backup files. Only a payload that is not a JSON object at all is rejected.
func DecodeSnapshot(data []byte, out any) error {
	err := json.Unmarshal(data, out)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
}

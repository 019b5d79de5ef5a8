package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbianchi/moto-soul/internal/config"
	"github.com/pbianchi/moto-soul/internal/logger"
	"github.com/pbianchi/moto-soul/internal/store"
	"github.com/pbianchi/moto-soul/models"
)

const testAppVersion = "1.0.0-test"

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestRecords(t *testing.T) store.RecordStore {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return store.NewRecordStore(db, logger.Nop())
}

func newTestLogbookBackup(t *testing.T) (LogbookBackupService, store.LogbookRepository) {
	t.Helper()
	repo := store.NewLogbookRepository(newTestRecords(t), logger.Nop())
	return NewLogbookBackupService(repo, testAppVersion, logger.Nop()), repo
}

func newTestExplorerBackup(t *testing.T) (ExplorerBackupService, store.ExplorerRepository) {
	t.Helper()
	repo := store.NewExplorerRepository(newTestRecords(t), logger.Nop())
	return NewExplorerBackupService(repo, testAppVersion, logger.Nop()), repo
}

func tripIDs(trips []models.Trip) map[string]bool {
	ids := make(map[string]bool, len(trips))
	for _, trip := range trips {
		ids[trip.ID] = true
	}
	return ids
}

// ─────────────────────────────────────────────
// Logbook export
// ─────────────────────────────────────────────

func TestLogbookExport_StampsMetadata(t *testing.T) {
	backup, _ := newTestLogbookBackup(t)

	snapshot, err := backup.Export(testContext())
	require.NoError(t, err)

	assert.Equal(t, testAppVersion, snapshot.AppVersion)
	_, parseErr := time.Parse(time.RFC3339, snapshot.ExportDate)
	assert.NoError(t, parseErr)
}

func TestLogbookExport_EmptyStore(t *testing.T) {
	backup, _ := newTestLogbookBackup(t)

	snapshot, err := backup.Export(testContext())
	require.NoError(t, err)

	assert.Nil(t, snapshot.Profile)
	assert.Empty(t, snapshot.Trips)
	assert.Empty(t, snapshot.Maintenance)
	assert.Empty(t, snapshot.Fuel)
}

// ─────────────────────────────────────────────
// Logbook round trip
// ─────────────────────────────────────────────

func TestLogbookBackup_RoundTrip(t *testing.T) {
	source, sourceRepo := newTestLogbookBackup(t)
	ctx := testContext()

	_, err := sourceRepo.SaveProfile(ctx, models.Profile{RiderName: "Paolo", BikeModel: "R1250GS", CurrentKm: 18300})
	require.NoError(t, err)
	_, err = sourceRepo.AddTrip(ctx, models.Trip{Title: "Stelvio", StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Distance: 320})
	require.NoError(t, err)
	_, err = sourceRepo.AddTrip(ctx, models.Trip{Title: "Como", StartDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Distance: 180})
	require.NoError(t, err)
	_, err = sourceRepo.AddMaintenance(ctx, models.MaintenanceEntry{Type: models.MaintenanceService, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Km: 18000, Cost: 350})
	require.NoError(t, err)
	_, err = sourceRepo.AddFuel(ctx, models.FuelEntry{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Liters: 14.5, PricePerLiter: 1.85})
	require.NoError(t, err)

	snapshot, err := source.Export(ctx)
	require.NoError(t, err)

	target, targetRepo := newTestLogbookBackup(t)
	require.NoError(t, target.Import(ctx, snapshot))

	profile, err := targetRepo.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Paolo", profile.RiderName)

	trips, err := targetRepo.GetAllTrips(ctx)
	require.NoError(t, err)
	assert.Equal(t, tripIDs(snapshot.Trips), tripIDs(trips))

	maintenance, err := targetRepo.GetAllMaintenance(ctx)
	require.NoError(t, err)
	require.Len(t, maintenance, 1)
	assert.Equal(t, snapshot.Maintenance[0].ID, maintenance[0].ID)

	fuel, err := targetRepo.GetAllFuel(ctx)
	require.NoError(t, err)
	require.Len(t, fuel, 1)
	assert.InDelta(t, snapshot.Fuel[0].TotalCost, fuel[0].TotalCost, 1e-9)
}

func TestLogbookImport_ReplacesExistingRecords(t *testing.T) {
	backup, repo := newTestLogbookBackup(t)
	ctx := testContext()

	stale, err := repo.AddTrip(ctx, models.Trip{Title: "stale", StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	snapshot := models.LogbookSnapshot{
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		AppVersion: testAppVersion,
		Trips: []models.Trip{
			{ID: "trip-imported-1", Title: "imported", StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	require.NoError(t, backup.Import(ctx, snapshot))

	trips, err := repo.GetAllTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "trip-imported-1", trips[0].ID)
	assert.NotContains(t, tripIDs(trips), stale.ID)
}

func TestLogbookImport_WithoutProfileKeepsExisting(t *testing.T) {
	backup, repo := newTestLogbookBackup(t)
	ctx := testContext()

	_, err := repo.SaveProfile(ctx, models.Profile{RiderName: "Paolo"})
	require.NoError(t, err)

	// a snapshot with no profile section leaves the configured profile alone
	require.NoError(t, backup.Import(ctx, models.LogbookSnapshot{}))

	profile, err := repo.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Paolo", profile.RiderName)
}

func TestLogbookImport_FailureReportedAsImportError(t *testing.T) {
	backup, _ := newTestLogbookBackup(t)

	// two records under the same id make the second restore fail mid-import
	snapshot := models.LogbookSnapshot{
		Trips: []models.Trip{
			{ID: "trip-dup", Title: "first"},
			{ID: "trip-dup", Title: "second"},
		},
	}

	err := backup.Import(testContext(), snapshot)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImportFailed)
}

// ─────────────────────────────────────────────
// Explorer round trip
// ─────────────────────────────────────────────

func TestExplorerBackup_RoundTrip(t *testing.T) {
	source, sourceRepo := newTestExplorerBackup(t)
	ctx := testContext()

	lat, lng := 46.344, 10.495
	_, err := sourceRepo.AddRestaurant(ctx, models.Restaurant{Name: "Trattoria", Type: models.RestaurantTraditional, Rating: 5, Lat: &lat, Lng: &lng})
	require.NoError(t, err)
	_, err = sourceRepo.AddLink(ctx, models.Link{Name: "advrider", URL: "https://example.org", Category: models.LinkForum})
	require.NoError(t, err)
	_, err = sourceRepo.AddWaypoint(ctx, models.Waypoint{Name: "rifugio", Type: "stop", Lat: 46.1, Lng: 10.2})
	require.NoError(t, err)
	require.NoError(t, sourceRepo.EnsureDefaultContacts(ctx))
	_, err = sourceRepo.SaveToolPref(ctx, models.ToolPref{ToolName: "fuel-calculator", Settings: map[string]string{"price": "1.85"}})
	require.NoError(t, err)

	snapshot, err := source.Export(ctx)
	require.NoError(t, err)

	target, targetRepo := newTestExplorerBackup(t)
	require.NoError(t, target.Import(ctx, snapshot))

	restaurants, err := targetRepo.GetAllRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, snapshot.Restaurants[0].ID, restaurants[0].ID)

	links, err := targetRepo.GetAllLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	waypoints, err := targetRepo.GetAllWaypoints(ctx)
	require.NoError(t, err)
	assert.Len(t, waypoints, 1)

	contacts, err := targetRepo.GetAllEmergencyContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 3)

	pref, err := targetRepo.GetToolPref(ctx, "fuel-calculator")
	require.NoError(t, err)
	assert.Equal(t, "1.85", pref.Settings["price"])
}

func TestExplorerImport_ReplacesSeededContacts(t *testing.T) {
	backup, repo := newTestExplorerBackup(t)
	ctx := testContext()

	require.NoError(t, repo.EnsureDefaultContacts(ctx))

	snapshot := models.ExplorerSnapshot{
		EmergencyContacts: []models.EmergencyContact{
			{ID: "emergency-custom", Name: "Officina Rossi", Number: "02 1234567", Type: models.ContactAssistance},
		},
	}
	require.NoError(t, backup.Import(ctx, snapshot))

	contacts, err := repo.GetAllEmergencyContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "emergency-custom", contacts[0].ID)
}

// ─────────────────────────────────────────────
// Snapshot codec
// ─────────────────────────────────────────────

func TestSnapshotCodec_RoundTrip(t *testing.T) {
	snapshot := models.LogbookSnapshot{
		ExportDate: "2024-08-01T10:00:00Z",
		AppVersion: testAppVersion,
		Trips:      []models.Trip{{ID: "trip-1", Title: "Stelvio", Distance: 320}},
	}

	data, err := EncodeSnapshot(snapshot)
	require.NoError(t, err)

	var decoded models.LogbookSnapshot
	require.NoError(t, DecodeSnapshot(data, &decoded))
	assert.Equal(t, snapshot, decoded)
}

func TestDecodeSnapshot_NotJSON(t *testing.T) {
	var decoded models.LogbookSnapshot

	err := DecodeSnapshot([]byte("definitely not json"), &decoded)
	assert.ErrorIs(t, err, ErrMalformedSnapshot)
}

func TestDecodeSnapshot_WrongTypedCollectionIsSkipped(t *testing.T) {
	payload := []byte(`{"exportDate":"2024-08-01T10:00:00Z","trips":"oops","fuel":[]}`)

	var decoded models.LogbookSnapshot
	require.NoError(t, DecodeSnapshot(payload, &decoded))

	assert.Equal(t, "2024-08-01T10:00:00Z", decoded.ExportDate)
	assert.Empty(t, decoded.Trips)
}

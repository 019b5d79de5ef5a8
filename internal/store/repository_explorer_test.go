package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbianchi/moto-soul/internal/logger"
	"github.com/pbianchi/moto-soul/models"
)

func newTestExplorerRepo(t *testing.T) ExplorerRepository {
	t.Helper()
	records := newTestRecordStore(t)
	return NewExplorerRepository(records, logger.Nop())
}

func ptr(v float64) *float64 { return &v }

// ─────────────────────────────────────────────
// Restaurants
// ─────────────────────────────────────────────

func TestExplorer_AddAndGetRestaurant(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	added, err := repo.AddRestaurant(ctx, models.Restaurant{
		Name:     "Trattoria del Passo",
		Location: "Passo Gavia",
		Type:     models.RestaurantTraditional,
		Rating:   5,
		Lat:      ptr(46.344),
		Lng:      ptr(10.495),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^rest-`, added.ID)

	got, err := repo.GetRestaurant(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trattoria del Passo", got.Name)
	require.True(t, got.HasCoordinates())
	assert.InDelta(t, 46.344, *got.Lat, 1e-9)
}

func TestExplorer_GetRestaurantNotFound(t *testing.T) {
	repo := newTestExplorerRepo(t)

	_, err := repo.GetRestaurant(testContext(), "rest-missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestExplorer_RestaurantsSortedByRatingDesc(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	three, err := repo.AddRestaurant(ctx, models.Restaurant{Name: "three stars", Type: models.RestaurantBar, Rating: 3})
	require.NoError(t, err)
	fiveA, err := repo.AddRestaurant(ctx, models.Restaurant{Name: "five A", Type: models.RestaurantGourmet, Rating: 5})
	require.NoError(t, err)
	fiveB, err := repo.AddRestaurant(ctx, models.Restaurant{Name: "five B", Type: models.RestaurantPizza, Rating: 5})
	require.NoError(t, err)

	restaurants, err := repo.GetAllRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 3)

	// equal ratings keep insertion order
	assert.Equal(t, fiveA.ID, restaurants[0].ID)
	assert.Equal(t, fiveB.ID, restaurants[1].ID)
	assert.Equal(t, three.ID, restaurants[2].ID)
}

func TestExplorer_GetRestaurantsByType(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	_, err := repo.AddRestaurant(ctx, models.Restaurant{Name: "slice", Type: models.RestaurantPizza, Rating: 4})
	require.NoError(t, err)
	_, err = repo.AddRestaurant(ctx, models.Restaurant{Name: "espresso", Type: models.RestaurantBar, Rating: 4})
	require.NoError(t, err)

	pizzas, err := repo.GetRestaurantsByType(ctx, models.RestaurantPizza)
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, "slice", pizzas[0].Name)
}

func TestExplorer_AddRestaurantRatingOutOfRange(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	_, err := repo.AddRestaurant(ctx, models.Restaurant{Name: "zero", Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = repo.AddRestaurant(ctx, models.Restaurant{Name: "six", Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestExplorer_AddRestaurantLoneCoordinate(t *testing.T) {
	repo := newTestExplorerRepo(t)

	_, err := repo.AddRestaurant(testContext(), models.Restaurant{Name: "half", Rating: 3, Lat: ptr(45.0)})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

// ─────────────────────────────────────────────
// Links
// ─────────────────────────────────────────────

func TestExplorer_LinksSortedByCategoryThenName(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	_, err := repo.AddLink(ctx, models.Link{Name: "quellidellelica", URL: "https://example.org/f1", Category: models.LinkForum})
	require.NoError(t, err)
	_, err = repo.AddLink(ctx, models.Link{Name: "meteo passi", URL: "https://example.org/r1", Category: models.LinkResource})
	require.NoError(t, err)
	_, err = repo.AddLink(ctx, models.Link{Name: "advrider", URL: "https://example.org/f2", Category: models.LinkForum})
	require.NoError(t, err)

	links, err := repo.GetAllLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "advrider", links[0].Name)
	assert.Equal(t, "quellidellelica", links[1].Name)
	assert.Equal(t, "meteo passi", links[2].Name)
}

// ─────────────────────────────────────────────
// Waypoints
// ─────────────────────────────────────────────

func TestExplorer_GetWaypointsByTrip(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	_, err := repo.AddWaypoint(ctx, models.Waypoint{TripID: "trip-1", Name: "rifugio", Type: "stop", Lat: 46.1, Lng: 10.2})
	require.NoError(t, err)
	_, err = repo.AddWaypoint(ctx, models.Waypoint{TripID: "trip-2", Name: "lago", Type: "view", Lat: 45.9, Lng: 9.2})
	require.NoError(t, err)
	_, err = repo.AddWaypoint(ctx, models.Waypoint{TripID: "trip-1", Name: "passo", Type: "summit", Lat: 46.5, Lng: 10.4})
	require.NoError(t, err)

	wps, err := repo.GetWaypointsByTrip(ctx, "trip-1")
	require.NoError(t, err)
	require.Len(t, wps, 2)
	assert.Equal(t, "rifugio", wps[0].Name)
	assert.Equal(t, "passo", wps[1].Name)
}

func TestExplorer_DeleteWaypointDoesNotTouchOthers(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	wp, err := repo.AddWaypoint(ctx, models.Waypoint{Name: "doomed", Type: "stop"})
	require.NoError(t, err)
	_, err = repo.AddWaypoint(ctx, models.Waypoint{Name: "survivor", Type: "stop"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteWaypoint(ctx, wp.ID))

	wps, err := repo.GetAllWaypoints(ctx)
	require.NoError(t, err)
	require.Len(t, wps, 1)
	assert.Equal(t, "survivor", wps[0].Name)
}

// ─────────────────────────────────────────────
// Emergency contacts
// ─────────────────────────────────────────────

func TestExplorer_EnsureDefaultContactsSeedsEmptyStore(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	require.NoError(t, repo.EnsureDefaultContacts(ctx))

	contacts, err := repo.GetAllEmergencyContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)

	// sorted by name
	assert.Equal(t, "ACI Soccorso", contacts[0].Name)
	assert.Equal(t, "Emergenza", contacts[1].Name)
	assert.Equal(t, "Soccorso Stradale BMW", contacts[2].Name)
	assert.Equal(t, "112", contacts[1].Number)
}

func TestExplorer_EnsureDefaultContactsIdempotent(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	require.NoError(t, repo.EnsureDefaultContacts(ctx))
	require.NoError(t, repo.EnsureDefaultContacts(ctx))

	contacts, err := repo.GetAllEmergencyContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 3)
}

func TestExplorer_EnsureDefaultContactsRespectsUserDeletes(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	require.NoError(t, repo.EnsureDefaultContacts(ctx))
	require.NoError(t, repo.DeleteEmergencyContact(ctx, "default-1"))

	// a later ensure must not resurrect the deleted default
	require.NoError(t, repo.EnsureDefaultContacts(ctx))

	contacts, err := repo.GetAllEmergencyContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestExplorer_AddEmergencyContact(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	added, err := repo.AddEmergencyContact(ctx, models.EmergencyContact{
		Name:   "Officina Rossi",
		Number: "02 1234567",
		Type:   models.ContactAssistance,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^emergency-`, added.ID)
}

// ─────────────────────────────────────────────
// Tool preferences
// ─────────────────────────────────────────────

func TestExplorer_SaveToolPrefUpsertsByName(t *testing.T) {
	repo := newTestExplorerRepo(t)
	ctx := testContext()

	_, err := repo.SaveToolPref(ctx, models.ToolPref{ToolName: "fuel-calculator", Settings: map[string]string{"price": "1.85"}})
	require.NoError(t, err)
	saved, err := repo.SaveToolPref(ctx, models.ToolPref{ToolName: "fuel-calculator", Settings: map[string]string{"price": "1.92"}})
	require.NoError(t, err)
	assert.Equal(t, "fuel-calculator", saved.ID)

	got, err := repo.GetToolPref(ctx, "fuel-calculator")
	require.NoError(t, err)
	assert.Equal(t, "1.92", got.Settings["price"])

	all, err := repo.GetAllToolPrefs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestExplorer_SaveToolPrefRequiresName(t *testing.T) {
	repo := newTestExplorerRepo(t)

	_, err := repo.SaveToolPref(testContext(), models.ToolPref{})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestExplorer_GetToolPrefNotFound(t *testing.T) {
	repo := newTestExplorerRepo(t)

	_, err := repo.GetToolPref(testContext(), "unknown-tool")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

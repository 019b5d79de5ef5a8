package store

import "github.com/google/uuid"

// Record id prefixes, carried over from the original data so that exported
// snapshots stay recognisable. The suffix is a UUIDv7: time-ordered like the
// old timestamp ids, but unique even under rapid successive creates.
const (
	tripIDPrefix        = "trip"
	maintenanceIDPrefix = "maint"
	fuelIDPrefix        = "fuel"
	restaurantIDPrefix  = "rest"
	linkIDPrefix        = "link"
	waypointIDPrefix    = "wp"
	contactIDPrefix     = "emergency"
)

// IDGenerator produces unique record ids with an entity prefix.
type IDGenerator interface {
	Generate(prefix string) string
}

// UUIDGenerator implements [IDGenerator] with UUIDv7, falling back to a
// random v4 when the monotonic clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate(prefix string) string {
	v7, err := uuid.NewV7()
	if err != nil {
		return prefix + "-" + uuid.NewString()
	}

	return prefix + "-" + v7.String()
}

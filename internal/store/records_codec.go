package store

import (
	"encoding/json"
	"fmt"
)

// Collection names, one set per storage domain. They match the object store
// names of the original databases so exported snapshots keep the same keys.
const (
	collectionProfile     = "profile"
	collectionTrips       = "trips"
	collectionMaintenance = "maintenance"
	collectionFuel        = "fuel"

	collectionRestaurants = "restaurants"
	collectionLinks       = "links"
	collectionWaypoints   = "waypoints"
	collectionContacts    = "emergencyContacts"
	collectionToolPrefs   = "toolsPrefs"
)

func encodeRecord(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingRecord, err)
	}

	return payload, nil
}

func decodeRecord[T any](payload []byte) (T, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrDecodingRecord, err)
	}

	return v, nil
}

func decodeRecords[T any](payloads [][]byte) ([]T, error) {
	records := make([]T, 0, len(payloads))
	for _, payload := range payloads {
		v, err := decodeRecord[T](payload)
		if err != nil {
			return nil, err
		}
		records = append(records, v)
	}

	return records, nil
}

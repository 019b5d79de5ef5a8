package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	addRecord = `
		INSERT INTO records (collection, record_id, payload)
		VALUES (?, ?, ?);`

	getRecord = `
		SELECT payload
		FROM records
		WHERE collection = ? AND record_id = ?;`

	listRecords = `
		SELECT payload
		FROM records
		WHERE collection = ?
		ORDER BY seq;`

	// The conflict branch keeps the original seq, so an upserted record
	// retains its first-insertion position in store order.
	upsertRecord = `
		INSERT INTO records (collection, record_id, payload)
		VALUES (?, ?, ?)
		ON CONFLICT (collection, record_id) DO UPDATE SET payload = excluded.payload;`

	deleteRecord = `
		DELETE FROM records
		WHERE collection = ? AND record_id = ?;`

	clearRecords = `
		DELETE FROM records
		WHERE collection = ?;`

	countRecords = `
		SELECT COUNT(*)
		FROM records
		WHERE collection = ?;`
)

// buildListByFieldQuery builds the secondary-lookup query for records whose
// JSON payload carries the given value under a top-level field. This stands
// in for the secondary indexes of the original object stores (restaurants by
// type, waypoints by tripId, maintenance by type).
func buildListByFieldQuery(collection, field string, value any) (string, []any, error) {
	return sq.Select("payload").
		From("records").
		Where(sq.Eq{"collection": collection}).
		Where(sq.Expr("json_extract(payload, '$.' || ?) = ?", field, value)).
		OrderBy("seq").
		ToSql()
}

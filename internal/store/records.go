package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pbianchi/moto-soul/internal/logger"
)

type recordStore struct {
	*DB
	classifier *SQLiteErrorClassifier
	logger     *logger.Logger
}

// NewRecordStore builds the generic collection store on top of an open,
// migrated database connection.
func NewRecordStore(db *DB, logger *logger.Logger) RecordStore {
	return &recordStore{
		DB:         db,
		classifier: NewSQLiteErrorClassifier(),
		logger:     logger,
	}
}

func (s *recordStore) Add(ctx context.Context, collection, id string, payload []byte) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, addRecord, collection, id, payload)
	if err != nil {
		classified := s.classifier.Classify(err)
		if !errors.Is(classified, ErrDuplicateKey) {
			log.Err(err).
				Str("func", "recordStore.Add").
				Str("collection", collection).
				Str("record_id", id).
				Msg("failed to insert record")
		}
		return fmt.Errorf("failed to add record (collection=%s, id=%s): %w", collection, id, classified)
	}

	return nil
}

func (s *recordStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	err := s.DB.QueryRowContext(ctx, getRecord, collection, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record (collection=%s, id=%s): %w", collection, id, ErrRecordNotFound)
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.Get").
			Str("collection", collection).
			Str("record_id", id).
			Msg("failed to query record")
		return nil, fmt.Errorf("failed to get record (collection=%s, id=%s): %w", collection, id, s.classifier.Classify(err))
	}

	return payload, nil
}

func (s *recordStore) ListAll(ctx context.Context, collection string) ([][]byte, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, listRecords, collection)
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.ListAll").
			Str("collection", collection).
			Msg("failed to query collection")
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, s.classifier.Classify(err))
	}
	defer rows.Close()

	return s.scanPayloads(ctx, collection, rows)
}

func (s *recordStore) ListByField(ctx context.Context, collection, field string, value any) ([][]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListByFieldQuery(collection, field, value)
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.ListByField").
			Str("collection", collection).
			Str("field", field).
			Msg("failed to build lookup query")
		return nil, fmt.Errorf("failed to build lookup query (collection=%s, field=%s): %w", collection, field, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.ListByField").
			Str("collection", collection).
			Str("field", field).
			Msg("failed to query collection by field")
		return nil, fmt.Errorf("failed to list collection %s by %s: %w", collection, field, s.classifier.Classify(err))
	}
	defer rows.Close()

	return s.scanPayloads(ctx, collection, rows)
}

func (s *recordStore) Update(ctx context.Context, collection, id string, payload []byte) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertRecord, collection, id, payload)
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.Update").
			Str("collection", collection).
			Str("record_id", id).
			Msg("failed to upsert record")
		return fmt.Errorf("failed to update record (collection=%s, id=%s): %w", collection, id, s.classifier.Classify(err))
	}

	return nil
}

func (s *recordStore) Delete(ctx context.Context, collection, id string) error {
	log := logger.FromContext(ctx)

	// deleting an absent record is a no-op, not an error
	_, err := s.DB.ExecContext(ctx, deleteRecord, collection, id)
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.Delete").
			Str("collection", collection).
			Str("record_id", id).
			Msg("failed to delete record")
		return fmt.Errorf("failed to delete record (collection=%s, id=%s): %w", collection, id, s.classifier.Classify(err))
	}

	return nil
}

func (s *recordStore) Clear(ctx context.Context, collection string) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, clearRecords, collection)
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.Clear").
			Str("collection", collection).
			Msg("failed to clear collection")
		return fmt.Errorf("failed to clear collection %s: %w", collection, s.classifier.Classify(err))
	}

	return nil
}

func (s *recordStore) Count(ctx context.Context, collection string) (int64, error) {
	log := logger.FromContext(ctx)

	var n int64
	err := s.DB.QueryRowContext(ctx, countRecords, collection).Scan(&n)
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.Count").
			Str("collection", collection).
			Msg("failed to count collection")
		return 0, fmt.Errorf("failed to count collection %s: %w", collection, s.classifier.Classify(err))
	}

	return n, nil
}

func (s *recordStore) scanPayloads(ctx context.Context, collection string, rows *sql.Rows) ([][]byte, error) {
	log := logger.FromContext(ctx)

	var payloads [][]byte
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			log.Err(err).
				Str("func", "recordStore.scanPayloads").
				Str("collection", collection).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("failed to scan record row: %w", s.classifier.Classify(err))
		}
		payloads = append(payloads, payload)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordStore.scanPayloads").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating record rows: %w", s.classifier.Classify(rowsErr))
	}

	return payloads, nil
}

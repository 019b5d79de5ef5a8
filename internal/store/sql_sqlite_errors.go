package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier maps driver errors returned by mattn/go-sqlite3 onto
// the package sentinel errors, so callers can match with [errors.Is] without
// importing the driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify wraps err into the matching sentinel:
//   - unique/primary-key constraint violations become [ErrDuplicateKey];
//   - every other sqlite3 driver error becomes [ErrStorageUnavailable];
//   - nil and non-driver errors are returned unchanged.
//
// See https://www.sqlite.org/rescode.html for the full result-code list.
func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	if sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

package presets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownKey is returned for a key that is not in Fields.
	ErrUnknownKey = errors.New("unknown preset key")
	// ErrBelowMinimum is returned for a value under the field's minimum.
	ErrBelowMinimum = errors.New("value below minimum")
	// ErrNoDatabase is returned when saving through a Store without a database.
	ErrNoDatabase = errors.New("preset store has no database")
)

// Store persists form defaults in the input_defaults table.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// All returns the built-in defaults overlaid with the stored values.
// A nil Store returns the built-in defaults.
func (s *Store) All(ctx context.Context) (Values, error) {
	values := Builtin()
	if s == nil || s.db == nil {
		return values, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM input_defaults`)
	if err != nil {
		return values, fmt.Errorf("query input defaults: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return Builtin(), fmt.Errorf("scan input default: %w", err)
		}
		if _, ok := Lookup(key); ok {
			values[key] = value
		}
	}
	if err := rows.Err(); err != nil {
		return Builtin(), fmt.Errorf("iterate input defaults: %w", err)
	}

	return values, nil
}

// Save validates and stores every value in one transaction.
func (s *Store) Save(ctx context.Context, values Values) error {
	if s == nil || s.db == nil {
		return ErrNoDatabase
	}
	for key, value := range values {
		if err := validate(key, value); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}

	for key, value := range values {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO input_defaults (key, value)
			VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = CURRENT_TIMESTAMP
		`, key, value); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert input default %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save transaction: %w", err)
	}
	return nil
}

func validate(key string, value float64) error {
	f, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < f.Min {
		return fmt.Errorf("%w: %s=%v, minimum %v", ErrBelowMinimum, key, value, f.Min)
	}
	return nil
}

package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/indcalc/internal/presets"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run inserts every built-in form default that is not stored yet. It never
// overwrites a stored value, so running it repeatedly is safe.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	for _, f := range presets.Fields {
		if err := ensureDefault(ctx, tx, f, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureDefault(ctx context.Context, tx *sql.Tx, f presets.Field, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM input_defaults WHERE key = ?)`, f.Key).Scan(&exists); err != nil {
		return fmt.Errorf("check input default %s existence: %w", f.Key, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO input_defaults (key, value) VALUES (?, ?)`, f.Key, f.Default); err != nil {
		return fmt.Errorf("insert input default %s: %w", f.Key, err)
	}
	stats.Inserts++
	return nil
}

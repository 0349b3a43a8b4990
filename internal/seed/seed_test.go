package seed

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/indcalc/internal/db"
	"github.com/Simplici0/indcalc/internal/migrations"
	"github.com/Simplici0/indcalc/internal/presets"
)

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "seed-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.Up(ctx, database))
	return database
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openMigrated(t)

	for i := 0; i < 10; i++ {
		stats, err := Run(ctx, database)
		require.NoError(t, err, "iteration %d", i)
		if i == 0 {
			assert.Equal(t, len(presets.Fields), stats.Inserts, "first run inserts")
			continue
		}
		assert.Zero(t, stats.Inserts, "iteration %d inserts", i)
	}

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM input_defaults`).Scan(&count))
	assert.Equal(t, len(presets.Fields), count)
}

func TestRunKeepsEditedValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openMigrated(t)

	_, err := database.Exec(`INSERT INTO input_defaults (key, value) VALUES (?, ?)`, presets.EOQDemand, 4200)
	require.NoError(t, err)

	stats, err := Run(ctx, database)
	require.NoError(t, err)
	assert.Equal(t, len(presets.Fields)-1, stats.Inserts)

	var value float64
	require.NoError(t, database.QueryRow(`SELECT value FROM input_defaults WHERE key = ?`, presets.EOQDemand).Scan(&value))
	assert.Equal(t, 4200.0, value)
}

package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	_ = godotenv.Load("../../../.env")

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "lumina_user"
	}
	dbPass := os.Getenv("DB_PASSWORD")
	if dbPass == "" {
		dbPass = "secret"
	}
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "lumina_db"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	return db
}

func cleanupBlobs(t *testing.T, db *sqlx.DB) {
	_, err := db.Exec("DELETE FROM blobs")
	require.NoError(t, err, "Failed to clean up blobs table")
}

func TestPostgresBlobStore_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store, err := NewPostgresBlobStore(db)
	require.NoError(t, err, "Failed to build store and ensure schema")

	cleanupBlobs(t, db)
	defer cleanupBlobs(t, db)

	ctx := context.Background()

	t.Run("Success: set then get round trips a JSON blob", func(t *testing.T) {
		payload := []byte(`[{"date":"2025-03-10","mood":"HAPPY"}]`)
		require.NoError(t, store.Set(ctx, domain.KeyMoods, payload))

		value, found, err := store.Get(ctx, domain.KeyMoods)
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, string(payload), string(value))
	})

	t.Run("Success: set overwrites an existing key", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.KeySettings, []byte(`{"theme":"lavender"}`)))
		require.NoError(t, store.Set(ctx, domain.KeySettings, []byte(`{"theme":"ocean"}`)))

		value, found, err := store.Get(ctx, domain.KeySettings)
		require.NoError(t, err)
		require.True(t, found)
		assert.JSONEq(t, `{"theme":"ocean"}`, string(value))
	})

	t.Run("Edge Case: get on a missing key reports not found", func(t *testing.T) {
		_, found, err := store.Get(ctx, "lumina_never_written")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Fail: non-JSON payload is rejected by the column type", func(t *testing.T) {
		err := store.Set(ctx, domain.KeyTasks, []byte("not json at all"))
		assert.Error(t, err)
	})

	t.Run("Success: delete all only removes engine-owned keys", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.KeyMeds, []byte(`[]`)))

		_, err := db.Exec(
			`INSERT INTO blobs (key, value) VALUES ('other_app_data', '{}')
			 ON CONFLICT (key) DO NOTHING`)
		require.NoError(t, err)

		require.NoError(t, store.DeleteAll(ctx))

		_, found, err := store.Get(ctx, domain.KeyMeds)
		require.NoError(t, err)
		assert.False(t, found)

		var count int
		require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM blobs WHERE key = 'other_app_data'`))
		assert.Equal(t, 1, count)
	})
}

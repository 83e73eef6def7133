package repo_test

import (
	"context"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvais/backend/internal/repo"
	"github.com/jyvais/backend/migrations"
	"github.com/jyvais/backend/testutil"
)

// newPostgresSlots migrates the test database up and returns a PostgresSlots
// running inside a transaction that is rolled back when the test finishes,
// so tests never see each other's rows. Skipped without TEST_DATABASE_URL.
func newPostgresSlots(t *testing.T) *repo.PostgresSlots {
	t.Helper()

	db := testutil.NewSQLDB(t)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err)
	_, err = provider.Up(context.Background())
	require.NoError(t, err)

	pool := testutil.NewPool(t)
	tx, err := pool.Begin(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { tx.Rollback(context.Background()) }) //nolint:errcheck

	return repo.NewPostgresSlots(tx)
}

func TestPostgresSlots_ReadAbsentKey(t *testing.T) {
	s := newPostgresSlots(t)

	_, ok, err := s.Read(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresSlots_WriteThenRead(t *testing.T) {
	s := newPostgresSlots(t)

	require.NoError(t, s.Write(context.Background(), repo.SlotLanguage, "fr"))

	got, ok, err := s.Read(context.Background(), repo.SlotLanguage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fr", got)
}

func TestPostgresSlots_WriteUpsertsExistingKey(t *testing.T) {
	s := newPostgresSlots(t)

	require.NoError(t, s.Write(context.Background(), repo.SlotSavedTrips, "[]"))
	require.NoError(t, s.Write(context.Background(), repo.SlotSavedTrips, `[{"id":1}]`))

	got, ok, err := s.Read(context.Background(), repo.SlotSavedTrips)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, got)
}

package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-jobboard-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "jobboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	// Ids deliberately out of lexical order: loads must come back in
	// insertion order, not sorted.
	records := []store.Record{
		{"job_id": "J9", "candidate_id": "C1", "application_date": "2024-01-01"},
		{"job_id": "J2", "candidate_id": "C2", "application_date": "2024-02-15"},
		{"job_id": "J5", "candidate_id": "C3", "application_date": "2024-03-01"},
	}
	order := []string{"job_id", "candidate_id", "application_date"}

	require.NoError(t, s.SaveAll(ctx, store.Applications, records, order))

	loaded, err := s.LoadAll(ctx, store.Applications)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSQLiteStoreMissingCollection(t *testing.T) {
	s := openTestSQLite(t)

	_, err := s.LoadAll(context.Background(), store.Jobs)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLiteStoreRewriteReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)
	order := []string{"company_id", "name", "location"}

	require.NoError(t, s.SaveAll(ctx, store.Companies, []store.Record{
		{"company_id": "CO1", "name": "Acme", "location": "Bangkok"},
		{"company_id": "CO2", "name": "Globex", "location": "Chiang Mai"},
	}, order))
	require.NoError(t, s.SaveAll(ctx, store.Companies, []store.Record{
		{"company_id": "CO3", "name": "Initech", "location": "Phuket"},
	}, order))

	loaded, err := s.LoadAll(ctx, store.Companies)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "CO3", loaded[0]["company_id"])
}

func TestSQLiteStoreEmptyCollection(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	require.NoError(t, s.SaveAll(ctx, store.Candidates, nil, []string{"candidate_id", "email", "first_name", "last_name", "is_admin"}))

	loaded, err := s.LoadAll(ctx, store.Candidates)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSQLiteStoreFieldOrderSurvivesRewrite(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	// Record maps carry no order; the table columns must follow the
	// declared field order so every rewrite keeps the same schema.
	records := []store.Record{
		{"application_date": "2024-01-01", "candidate_id": "C1", "job_id": "J1"},
	}
	order := []string{"job_id", "candidate_id", "application_date"}
	require.NoError(t, s.SaveAll(ctx, store.Applications, records, order))
	require.NoError(t, s.SaveAll(ctx, store.Applications, records, order))

	loaded, err := s.LoadAll(ctx, store.Applications)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, store.Record{
		"job_id":           "J1",
		"candidate_id":     "C1",
		"application_date": "2024-01-01",
	}, loaded[0])
}

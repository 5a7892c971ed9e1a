package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary store for testing
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "storefront-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

// writeRaw plants raw bytes under a key, bypassing JSON encoding. Used to
// simulate corrupted records.
func writeRaw(t *testing.T, s *Store, key string, val []byte) {
	t.Helper()
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
	require.NoError(t, err)
}

func TestGetJSON_AbsentKey(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	var dest string
	found, err := s.getJSON("no:such:key", &dest)
	require.NoError(t, err)
	require.False(t, found)
}

func TestGetJSON_CorruptValueTreatedAsAbsent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	writeRaw(t, s, "some:key", []byte("{not json"))

	var dest map[string]string
	found, err := s.getJSON("some:key", &dest)
	require.NoError(t, err)
	require.False(t, found)
}

func TestSetGetRoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, s.setJSON("some:key", map[string]int{"a": 1}))

	var dest map[string]int
	found, err := s.getJSON("some:key", &dest)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, dest["a"])
}

func TestSession(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	loggedIn, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.False(t, loggedIn)

	require.NoError(t, s.SetLoggedIn(ctx, true))

	loggedIn, err = s.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.True(t, loggedIn)
}

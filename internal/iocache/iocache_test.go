package iocache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apkasten906/ai-pairing-metrics/internal/contract"
	"github.com/apkasten906/ai-pairing-metrics/schema"
)

func newSQLiteStore(t *testing.T) contract.CacheStore {
	t.Helper()
	store, err := NewCacheStore(SnapshotTableName, schema.SQLiteBackend, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSnapshotCacheMemoizes(t *testing.T) {
	ctx := context.Background()
	client := &contract.MockGitClient{}

	// git is consulted exactly once per (revision, path) pair.
	client.On("FileAtRevision", ctx, "/repo", "refhash", "main.go").
		Return("package main\n").Once()

	cache := NewSnapshotCache(client, nil)
	first := cache.Content(ctx, "/repo", "refhash", "main.go")
	second := cache.Content(ctx, "/repo", "refhash", "main.go")

	assert.Equal(t, "package main\n", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, cache.Lookups)
	assert.Equal(t, 1, cache.Misses)
	client.AssertExpectations(t)
}

func TestSnapshotCacheDistinguishesRevisions(t *testing.T) {
	ctx := context.Background()
	client := &contract.MockGitClient{}

	client.On("FileAtRevision", ctx, "/repo", "rev1", "main.go").Return("v1").Once()
	client.On("FileAtRevision", ctx, "/repo", "rev2", "main.go").Return("v2").Once()

	cache := NewSnapshotCache(client, nil)
	assert.Equal(t, "v1", cache.Content(ctx, "/repo", "rev1", "main.go"))
	assert.Equal(t, "v2", cache.Content(ctx, "/repo", "rev2", "main.go"))
	client.AssertExpectations(t)
}

func TestSnapshotCacheDurableStore(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	// First run populates the durable store from git.
	client1 := &contract.MockGitClient{}
	client1.On("FileAtRevision", ctx, "/repo", "refhash", "main.go").
		Return("package main\n").Once()

	cache1 := NewSnapshotCache(client1, store)
	assert.Equal(t, "package main\n", cache1.Content(ctx, "/repo", "refhash", "main.go"))
	client1.AssertExpectations(t)

	// A later run against the same store never reaches git.
	client2 := &contract.MockGitClient{}
	cache2 := NewSnapshotCache(client2, store)
	assert.Equal(t, "package main\n", cache2.Content(ctx, "/repo", "refhash", "main.go"))
	assert.Equal(t, 0, cache2.Misses)
	client2.AssertNotCalled(t, "FileAtRevision")
}

func TestCacheStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)

	// Missing key
	_, ok, err := store.Get("refhash:main.go")
	require.NoError(t, err)
	assert.False(t, ok)

	// Set and get
	require.NoError(t, store.Set("refhash:main.go", []byte("content")))
	value, ok, err := store.Get("refhash:main.go")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("content"), value)

	// Overwrite
	require.NoError(t, store.Set("refhash:main.go", []byte("newer")))
	value, ok, err = store.Get("refhash:main.go")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("newer"), value)

	// Clear
	require.NoError(t, store.Clear())
	_, ok, err = store.Get("refhash:main.go")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStoreStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalEntries)

	require.NoError(t, store.Set("a", []byte("1")))
	require.NoError(t, store.Set("b", []byte("2")))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.TotalEntries)
	assert.False(t, status.LastEntryTime.IsZero())
	assert.False(t, status.OldestEntryTime.IsZero())
}

func TestCacheStoreNoneBackend(t *testing.T) {
	store, err := NewCacheStore(SnapshotTableName, schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// All operations are no-ops.
	require.NoError(t, store.Set("key", []byte("value")))
	_, ok, err := store.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestNewCacheStoreRejectsBadTableName(t *testing.T) {
	_, err := NewCacheStore("snapshots; DROP TABLE x", schema.SQLiteBackend, filepath.Join(t.TempDir(), "c.db"))
	assert.ErrorContains(t, err, "invalid table name")
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(SnapshotTableName, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", []byte("value")))
	require.NoError(t, store.Close())

	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// Clearing a path that no longer exists is fine.
	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
}

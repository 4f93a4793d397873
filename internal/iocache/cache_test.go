package iocache

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dealflowhq/dealflow/schema"
	"github.com/stretchr/testify/assert"
)

func TestCaching(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		// Clean up any existing test database
		testDBPath := GetDBFilePath()
		defer func() { _ = os.Remove(testDBPath) }()
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Test initialization with SQLite backend
		err := InitCaching(schema.SQLiteBackend, "")
		assert.NoError(t, err, "Failed to initialize caching")

		// Test that Manager is accessible
		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetScanStore(), "Scan store should not be nil")

		// Test cleanup
		CloseCaching()

		// Verify database file was created
		_, err = os.Stat(testDBPath)
		assert.False(t, os.IsNotExist(err), "Database file should be created")
	})

	t.Run("idempotent setup", func(t *testing.T) {
		testDBPath := GetDBFilePath()
		defer func() { _ = os.Remove(testDBPath) }()
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitCaching(schema.SQLiteBackend, "")
		err2 := InitCaching(schema.SQLiteBackend, "")
		err3 := InitCaching(schema.SQLiteBackend, "")

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")
		assert.NoError(t, err3, "Third init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseCaching()
		CloseCaching()
		CloseCaching()
	})

	t.Run("none backend operations", func(t *testing.T) {
		// Create a none backend store directly
		store, err := NewCacheStore("test_table", schema.NoneBackend, "")
		assert.NoError(t, err, "Failed to create none backend store")

		// Test Get returns error (no data)
		_, _, _, err = store.Get("test_key")
		assert.Error(t, err, "Expected error from Get on none backend")

		// Test Set is no-op (no error)
		err = store.Set("test_key", []byte("test_value"), 1, 123456789)
		assert.NoError(t, err, "Set should not error on none backend")

		// Verify Get still returns error after Set (no-op)
		_, _, _, err = store.Get("test_key")
		assert.Error(t, err, "Expected error from Get after Set on none backend")

		// Close is safe
		err = store.Close()
		assert.NoError(t, err, "Close should not error on none backend")
	})
}

// TestValidateTableName tests the validateTableName function with various inputs.
func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		wantErr   bool
	}{
		{name: "valid simple name", tableName: "scan_cache", wantErr: false},
		{name: "valid name with numbers", tableName: "scan_cache_v2", wantErr: false},
		{name: "valid name starting with underscore", tableName: "_scan_cache", wantErr: false},
		{name: "valid mixed case", tableName: "ScanCache_123", wantErr: false},
		{name: "empty name", tableName: "", wantErr: true},
		{name: "starts with number", tableName: "1_cache", wantErr: true},
		{name: "contains dash", tableName: "scan-cache", wantErr: true},
		{name: "contains space", tableName: "scan cache", wantErr: true},
		{name: "sql injection attempt", tableName: "scan'; DROP TABLE users; --", wantErr: true},
		{name: "contains dot", tableName: "scan.cache", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if tt.wantErr {
				assert.Error(t, err, "validateTableName should error for %q", tt.tableName)
			} else {
				assert.NoError(t, err, "validateTableName should not error for %q", tt.tableName)
			}
		})
	}
}

// TestQuoteTableName tests the quoteTableName function for all backends.
func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"scan_cache"`, quoteTableName("scan_cache", schema.SQLiteBackend))
	assert.Equal(t, "`scan_cache`", quoteTableName("scan_cache", schema.MySQLBackend))
	assert.Equal(t, `"scan_cache"`, quoteTableName("scan_cache", schema.PostgreSQLBackend))
	assert.Equal(t, `"scan_cache"`, quoteTableName("scan_cache", schema.NoneBackend))
}

// TestSQLiteBackendOperations tests the full lifecycle of SQLite backend operations.
func TestSQLiteBackendOperations(t *testing.T) {
	t.Run("set and get operations", func(t *testing.T) {
		store, err := NewCacheStore("test_table", schema.SQLiteBackend, ":memory:")
		assert.NoError(t, err, "Failed to create SQLite store")
		defer func() { _ = store.Close() }()

		testKey := "test_key"
		testValue := []byte(`[{"repo_name":"acme/widget"}]`)

		err = store.Set(testKey, testValue, 1, 1234567890)
		assert.NoError(t, err, "Set should not fail")

		value, version, timestamp, err := store.Get(testKey)
		assert.NoError(t, err, "Get should not fail")
		assert.Equal(t, string(testValue), string(value), "Get value mismatch")
		assert.Equal(t, 1, version, "Get version mismatch")
		assert.Equal(t, int64(1234567890), timestamp, "Get timestamp mismatch")
	})

	t.Run("upsert behavior", func(t *testing.T) {
		store, err := NewCacheStore("test_table", schema.SQLiteBackend, ":memory:")
		assert.NoError(t, err, "Failed to create SQLite store")
		defer func() { _ = store.Close() }()

		testKey := "upsert_key"
		err = store.Set(testKey, []byte("initial_value"), 1, 1000)
		assert.NoError(t, err, "Initial Set should not fail")

		err = store.Set(testKey, []byte("updated_value"), 2, 2000)
		assert.NoError(t, err, "Update Set should not fail")

		value, version, timestamp, err := store.Get(testKey)
		assert.NoError(t, err, "Get after update should not fail")
		assert.Equal(t, "updated_value", string(value), "After upsert, value mismatch")
		assert.Equal(t, 2, version, "After upsert, version mismatch")
		assert.Equal(t, int64(2000), timestamp, "After upsert, timestamp mismatch")
	})

	t.Run("get non-existent key", func(t *testing.T) {
		store, err := NewCacheStore("test_table", schema.SQLiteBackend, ":memory:")
		assert.NoError(t, err, "Failed to create SQLite store")
		defer func() { _ = store.Close() }()

		_, _, _, err = store.Get("non_existent_key")
		assert.Equal(t, sql.ErrNoRows, err, "Get non-existent key should return sql.ErrNoRows")
	})
}

// TestGetPlaceholder tests the getPlaceholder method for different backends.
func TestGetPlaceholder(t *testing.T) {
	assert.Equal(t, "?", (&CacheStoreImpl{backend: schema.SQLiteBackend}).getPlaceholder())
	assert.Equal(t, "?", (&CacheStoreImpl{backend: schema.MySQLBackend}).getPlaceholder())
	assert.Equal(t, "$1", (&CacheStoreImpl{backend: schema.PostgreSQLBackend}).getPlaceholder())
	assert.Equal(t, "?", (&CacheStoreImpl{backend: schema.NoneBackend}).getPlaceholder())
}

// TestGetUpsertQuery tests the getUpsertQuery method for different backends.
func TestGetUpsertQuery(t *testing.T) {
	tests := []struct {
		name         string
		backend      schema.DatabaseBackend
		wantContains []string
	}{
		{
			name:    "SQLite backend",
			backend: schema.SQLiteBackend,
			wantContains: []string{
				"INSERT OR REPLACE",
				`"scan_cache"`,
			},
		},
		{
			name:    "MySQL backend",
			backend: schema.MySQLBackend,
			wantContains: []string{
				"INSERT INTO",
				"ON DUPLICATE KEY UPDATE",
				"`scan_cache`",
			},
		},
		{
			name:    "PostgreSQL backend",
			backend: schema.PostgreSQLBackend,
			wantContains: []string{
				"INSERT INTO",
				"ON CONFLICT",
				"DO UPDATE SET",
				`"scan_cache"`,
				"$1", "$2", "$3", "$4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &CacheStoreImpl{backend: tt.backend, tableName: "scan_cache"}
			got := store.getUpsertQuery()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want, "getUpsertQuery() should contain %q", want)
			}
		})
	}
}

// TestGetCreateTableQuery tests the getCreateTableQuery function for different backends.
// The value column is TEXT everywhere so payloads round-trip identically across backends.
func TestGetCreateTableQuery(t *testing.T) {
	tests := []struct {
		name         string
		backend      schema.DatabaseBackend
		wantContains []string
	}{
		{
			name:    "SQLite backend",
			backend: schema.SQLiteBackend,
			wantContains: []string{
				"CREATE TABLE IF NOT EXISTS",
				`"scan_cache"`,
				"cache_key TEXT PRIMARY KEY",
				"cache_value TEXT",
				"cache_version INTEGER",
				"cache_timestamp INTEGER",
			},
		},
		{
			name:    "MySQL backend",
			backend: schema.MySQLBackend,
			wantContains: []string{
				"CREATE TABLE IF NOT EXISTS",
				"`scan_cache`",
				"cache_key VARCHAR(255) PRIMARY KEY",
				"cache_value TEXT",
				"cache_version INT",
				"cache_timestamp BIGINT",
			},
		},
		{
			name:    "PostgreSQL backend",
			backend: schema.PostgreSQLBackend,
			wantContains: []string{
				"CREATE TABLE IF NOT EXISTS",
				`"scan_cache"`,
				"cache_key TEXT PRIMARY KEY",
				"cache_value TEXT",
				"cache_version INTEGER",
				"cache_timestamp BIGINT",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := getCreateTableQuery("scan_cache", tt.backend)
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want, "getCreateTableQuery() should contain %q", want)
			}
		})
	}
}

// TestNewCacheStoreErrors tests error scenarios in NewCacheStore.
func TestNewCacheStoreErrors(t *testing.T) {
	t.Run("invalid table name", func(t *testing.T) {
		_, err := NewCacheStore("invalid-name", schema.SQLiteBackend, "")
		assert.Error(t, err, "Expected error for invalid table name")
	})

	t.Run("empty table name", func(t *testing.T) {
		_, err := NewCacheStore("", schema.SQLiteBackend, "")
		assert.Error(t, err, "Expected error for empty table name")
	})

	t.Run("unsupported backend", func(t *testing.T) {
		_, err := NewCacheStore("test_table", "unsupported", "")
		assert.Error(t, err, "Expected error for unsupported backend")
	})
}

// TestClearCache tests the ClearCache function.
func TestClearCache(t *testing.T) {
	t.Run("SQLite backend", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test_clear.db")

		db, err := sql.Open("sqlite", dbPath)
		assert.NoError(t, err, "Failed to create database")
		_, err = db.Exec("CREATE TABLE test (id INTEGER PRIMARY KEY)")
		assert.NoError(t, err, "Failed to create table")
		_ = db.Close()

		_, err = os.Stat(dbPath)
		assert.False(t, os.IsNotExist(err), "Database file should exist before ClearCache")

		err = ClearCache(schema.SQLiteBackend, dbPath, "")
		assert.NoError(t, err, "ClearCache should not fail")

		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err), "Database file should be removed after ClearCache")
	})

	t.Run("SQLite backend - non-existent file", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "non_existent.db")
		err := ClearCache(schema.SQLiteBackend, dbPath, "")
		assert.NoError(t, err, "ClearCache on non-existent file should not error")
	})

	t.Run("NoneBackend", func(t *testing.T) {
		err := ClearCache(schema.NoneBackend, "", "")
		assert.NoError(t, err, "ClearCache with NoneBackend should not error")
	})

	t.Run("empty dbFilePath for SQLite", func(t *testing.T) {
		err := ClearCache(schema.SQLiteBackend, "", "")
		assert.Error(t, err, "Expected error for empty dbFilePath with SQLite backend")
	})

	t.Run("unsupported backend", func(t *testing.T) {
		err := ClearCache("unsupported", "", "")
		assert.Error(t, err, "Expected error for unsupported backend")
	})
}

// TestCacheStoreManagerConcurrency tests concurrent access to CacheStoreManager.
func TestCacheStoreManagerConcurrency(t *testing.T) {
	initOnce = sync.Once{}
	closeOnce = sync.Once{}

	err := InitCaching(schema.SQLiteBackend, ":memory:")
	if err != nil {
		t.Fatalf("InitCaching failed: %v", err)
	}
	defer CloseCaching()

	const numGoroutines = 10
	done := make(chan bool, numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer func() { done <- true }()
			store := Manager.GetScanStore()
			if store == nil {
				t.Errorf("Goroutine %d: GetScanStore returned nil", id)
				return
			}
			err := store.Set("concurrent_key", []byte("value"), 1, int64(1000+id))
			if err != nil {
				t.Errorf("Goroutine %d: Set failed: %v", id, err)
			}
		}(i)
	}

	for range numGoroutines {
		<-done
	}
}

// TestCacheStoreGetStatus tests the GetStatus method for different backends.
func TestCacheStoreGetStatus(t *testing.T) {
	t.Run("SQLite backend with data", func(t *testing.T) {
		store, err := NewCacheStore("test_status_table", schema.SQLiteBackend, ":memory:")
		assert.NoError(t, err, "Failed to create SQLite store")
		defer func() { _ = store.Close() }()

		entries := []struct {
			key string
			ts  int64
		}{
			{"key1", 1000},
			{"key2", 2000},
			{"key3", 1500},
		}
		for _, e := range entries {
			err := store.Set(e.key, []byte("value"), 1, e.ts)
			assert.NoError(t, err, "Set should not fail")
		}

		status, err := store.GetStatus()
		assert.NoError(t, err, "GetStatus should not fail")

		assert.Equal(t, "sqlite", status.Backend, "Backend should be sqlite")
		assert.True(t, status.Connected, "Should be connected")
		assert.Equal(t, 3, status.TotalEntries, "Total entries should be 3")
		assert.Equal(t, time.Unix(2000, 0), status.LastEntryTime, "Last entry time should be 2000")
		assert.Equal(t, time.Unix(1000, 0), status.OldestEntryTime, "Oldest entry time should be 1000")
		assert.Greater(t, status.TableSizeBytes, int64(0), "Table size should be greater than 0")
	})

	t.Run("SQLite backend empty", func(t *testing.T) {
		store, err := NewCacheStore("test_empty_table", schema.SQLiteBackend, ":memory:")
		assert.NoError(t, err, "Failed to create SQLite store")
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		assert.NoError(t, err, "GetStatus should not fail")

		assert.Equal(t, "sqlite", status.Backend, "Backend should be sqlite")
		assert.True(t, status.Connected, "Should be connected")
		assert.Equal(t, 0, status.TotalEntries, "Total entries should be 0")
		assert.True(t, status.LastEntryTime.IsZero(), "Last entry time should be zero")
		assert.True(t, status.OldestEntryTime.IsZero(), "Oldest entry time should be zero")
	})

	t.Run("None backend", func(t *testing.T) {
		store, err := NewCacheStore("test_none", schema.NoneBackend, "")
		assert.NoError(t, err, "Failed to create None store")

		status, err := store.GetStatus()
		assert.NoError(t, err, "GetStatus should not fail")

		assert.Equal(t, "none", status.Backend, "Backend should be none")
		assert.False(t, status.Connected, "Should not be connected")
		assert.Equal(t, 0, status.TotalEntries, "Total entries should be 0")
	})
}

// TestCacheStoreNilDB tests operations with a nil database handle.
func TestCacheStoreNilDB(t *testing.T) {
	store := &CacheStoreImpl{db: nil, tableName: "test", backend: schema.NoneBackend}

	_, _, _, err := store.Get("test_key")
	assert.Equal(t, sql.ErrNoRows, err, "Get with nil db should return sql.ErrNoRows")

	err = store.Set("test_key", []byte("value"), 1, 1000)
	assert.NoError(t, err, "Set with nil db (NoneBackend) should not error")

	err = store.Close()
	assert.NoError(t, err, "Close on nil db should not error")
}

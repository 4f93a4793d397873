// Package contract provides interfaces and shared utilities for dealflow's internal architecture.
package contract

import (
	"context"

	"github.com/dealflowhq/dealflow/schema"
)

// StoreClient defines the read surface of the remote analysis store.
// This allows the pipeline to be tested without a live DynamoDB table.
type StoreClient interface {
	// Scan retrieves every record in the analysis table, transparently
	// following pagination until the full set is collected. Failures come
	// back as *schema.StoreError.
	Scan(ctx context.Context) ([]schema.RawRecord, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetScanStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
// Get returns the stored value, its schema version, and the unix timestamp
// it was written at. Set must replace any prior entry for the key atomically.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

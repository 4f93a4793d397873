package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/schema"
)

// currentCacheVersion defines the version of the cache payload schema.
const currentCacheVersion = 1

// cachedScan returns the raw records for a board render, reusing a cached
// scan when one exists for the same (table, limit) key and is younger than
// the configured TTL. Store errors are propagated and never cached, so the
// next render retries the scan.
func cachedScan(ctx context.Context, cfg *contract.Config, client contract.StoreClient, mgr contract.CacheManager, now time.Time) ([]schema.RawRecord, bool, error) {
	store := mgr.GetScanStore()
	if store == nil {
		// Fallback to a direct scan
		records, err := client.Scan(ctx)
		return records, false, err
	}

	key := scanCacheKey(cfg)

	// Check for cache hit
	if records, ok := checkCacheHit(store, key, cfg.CacheTTL, now); ok {
		return records, true, nil
	}

	// Cache miss: scan and store
	records, err := scanAndStore(ctx, client, store, key, now)
	return records, false, err
}

// checkCacheHit attempts to retrieve and validate a cached scan. The bool
// reports a usable hit; a cached empty scan is still a hit.
func checkCacheHit(store contract.CacheStore, key string, ttl time.Duration, now time.Time) ([]schema.RawRecord, bool) {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil, false // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		cachedAt := time.Unix(ts, 0)
		if now.Sub(cachedAt) < ttl {
			var records []schema.RawRecord
			if err := json.Unmarshal(data, &records); err == nil {
				return records, true // Cache hit
			}
		}
	}

	return nil, false // Cache miss (stale or version mismatch)
}

// scanAndStore scans the store and caches the result. A failed Set only
// costs the next render a scan, so it is not fatal.
func scanAndStore(ctx context.Context, client contract.StoreClient, store contract.CacheStore, key string, now time.Time) ([]schema.RawRecord, error) {
	records, err := client.Scan(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		_ = store.Set(key, data, currentCacheVersion, now.Unix())
	}

	return records, nil
}

// scanCacheKey creates a unique key based on the scan parameters. The limit
// is part of the key to match the per-limit memoization contract, even
// though the scan itself is limit-independent.
func scanCacheKey(cfg *contract.Config) string {
	key := fmt.Sprintf("%s:%s:%d", cfg.Region, cfg.Table, cfg.ResultLimit)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

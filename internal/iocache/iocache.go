// Package iocache persists raw store scans between board renders.
package iocache

import (
	"sync"

	"github.com/dealflowhq/dealflow/internal/contract"
)

// CacheStoreManager manages the scan CacheStore instance.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	scan         contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetScanStore returns the scan CacheStore.
func (mgr *CacheStoreManager) GetScanStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.scan
}

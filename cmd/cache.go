package cmd

import (
	"fmt"

	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/internal/iocache"
	"github.com/dealflowhq/dealflow/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config
	if err := iocache.InitCaching(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func cacheMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetCacheDBFilePath()
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheMigrateSetupWrapper wraps cacheMigrateSetup to provide PreRunE for migrate command.
func cacheMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheMigrateSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by board commands. This avoids AWS credential
// resolution and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the scan cache (improves performance)",
	Long: `Manage the scan cache that speeds up repeated board renders.

Dealflow caches the raw table scan so repeated renders within the freshness
window skip the DynamoDB round trip entirely.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached scans
  migrate - Run database schema migrations

Examples:
  # Check cache status
  dealflow cache status

  # Clear cache after the analysis pipeline reruns
  dealflow cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached scan data",
	Long: `Delete all cached scan data from the configured backend.

Use this when:
- The analysis pipeline rewrote the table
- Cache may be stale or corrupted
- Testing render times without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  dealflow cache clear

  # Clear MySQL cache (set connection string via env variable)
  DEALFLOW_CACHE_BACKEND=mysql DEALFLOW_CACHE_DB_CONNECT="..." dealflow cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the scan cache.

Displays:
- Backend type and connection status
- Total number of cached scans
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  dealflow cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetScanStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheMigrateCmd runs schema migrations for the cache database.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations for the scan cache",
	Long: `Apply or roll back schema migrations on the cache database.

Use --target-version to control the migration direction:
  -1  migrate to the latest version (default)
   0  roll back all migrations
   N  migrate to version N

Examples:
  # Migrate to latest
  dealflow cache migrate

  # Rollback to initial state
  dealflow cache migrate --target-version 0`,
	PreRunE: cacheMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

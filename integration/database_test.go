//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDealflowWithMySQL tests the dealflow cache against a MySQL backend.
func TestDealflowWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "dealflow",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/dealflow?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("DEALFLOW_CACHE_BACKEND", "mysql")
	_ = os.Setenv("DEALFLOW_CACHE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("DEALFLOW_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("DEALFLOW_CACHE_DB_CONNECT") }()

	// Run dealflow cache migrate
	err = runDealflowCommand(t, "cache", "migrate")
	require.NoError(t, err)

	// Run dealflow cache status
	err = runDealflowCommand(t, "cache", "status")
	require.NoError(t, err)

	// Run dealflow cache clear
	err = runDealflowCommand(t, "cache", "clear")
	require.NoError(t, err)
}

// TestDealflowWithPostgres tests the dealflow cache against a PostgreSQL backend.
func TestDealflowWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	pgC, err := postgres.Run(ctx, "postgres:18-alpine",
		postgres.WithDatabase("dealflow"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("secret123"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres password=secret123 dbname=dealflow sslmode=disable", host, port.Port())

	// Set environment variables
	_ = os.Setenv("DEALFLOW_CACHE_BACKEND", "postgresql")
	_ = os.Setenv("DEALFLOW_CACHE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("DEALFLOW_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("DEALFLOW_CACHE_DB_CONNECT") }()

	// Run dealflow cache migrate
	err = runDealflowCommand(t, "cache", "migrate")
	require.NoError(t, err)

	// Run dealflow cache status
	err = runDealflowCommand(t, "cache", "status")
	require.NoError(t, err)

	// Run dealflow cache clear
	err = runDealflowCommand(t, "cache", "clear")
	require.NoError(t, err)
}

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
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestModelmeterWithMySQL tests the modelmeter CLI with a MySQL store backend.
func TestModelmeterWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "modelmeter",
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

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/modelmeter?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("MODELMETER_STORE_BACKEND", "mysql")
	_ = os.Setenv("MODELMETER_STORE_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("MODELMETER_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("MODELMETER_STORE_CONNECT") }()

	runStoreRoundTrip(t)
}

// TestModelmeterWithPostgres tests the modelmeter CLI with a PostgreSQL store backend.
func TestModelmeterWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("MODELMETER_STORE_BACKEND", "postgresql")
	_ = os.Setenv("MODELMETER_STORE_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("MODELMETER_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("MODELMETER_STORE_CONNECT") }()

	runStoreRoundTrip(t)
}

// runStoreRoundTrip exercises evaluate, results status and results clear against
// whatever store backend the environment configures.
func runStoreRoundTrip(t *testing.T) {
	dataPath := writeSampleCSV(t)

	// Run modelmeter results clear
	err := runModelmeterCommand(t, "results", "clear")
	require.NoError(t, err)

	// Run an evaluation that records to the store
	err = runModelmeterCommand(t, "evaluate", dataPath,
		"--truth", "actual", "--estimate", "predicted",
		"--metrics", "rmse,mae")
	require.NoError(t, err)

	// Run a grouped class evaluation as well
	err = runModelmeterCommand(t, "evaluate", dataPath,
		"--truth", "outcome", "--estimate", "class",
		"--scores", "prob_yes",
		"--metrics", "accuracy,precision,recall")
	require.NoError(t, err)

	// Run modelmeter results status
	err = runModelmeterCommand(t, "results", "status")
	require.NoError(t, err)

	// Run modelmeter results clear again
	err = runModelmeterCommand(t, "results", "clear")
	require.NoError(t, err)
}

package cmd

import (
	"fmt"

	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/resultstore"
	"github.com/huangsam/modelmeter/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resultsSetup loads minimal configuration needed for result store operations.
// This is used by commands that need store access without full shared setup.
func resultsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := resultstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize result store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// resultsSetupWrapper wraps resultsSetup to provide PreRunE for results commands.
func resultsSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsSetup()
}

// resultsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func resultsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreConnect = connStr

	return nil
}

// resultsMigrateSetupWrapper wraps resultsMigrateSetup to provide PreRunE for migrate command.
func resultsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsMigrateSetup()
}

// resultsCmd focused on evaluation result management.
//
// Note: Results subcommands use minimal initialization (resultsSetup) instead
// of the full sharedSetup used by evaluation commands. This avoids data file
// validation and complex config processing for simple store operations.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage stored evaluation runs and exports",
	Long: `Manage the persisted history of evaluation runs.

When enabled with --store-backend, modelmeter records every evaluation,
storing:
- Run metadata (timestamp, data path, duration, parameters)
- Every computed metric row with its group key and direction

This enables tracking model performance across datasets and retraining
cycles, and data export for BI tools.

Supported backends: SQLite (default file), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show result tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  modelmeter results status --store-backend sqlite

  # Export for analysis in pandas/DuckDB
  modelmeter results export --store-backend sqlite --output-file results.parquet`,
}

// resultsStatusCmd shows result store status.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display result tracking statistics and connection details",
	Long: `Show detailed information about the evaluation result store.

Displays:
- Backend type and location
- Total number of evaluation runs stored
- Total number of metric rows stored

Examples:
  # Check result tracking status
  modelmeter results status --store-backend sqlite`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := resultstore.GetStore().Status()
		if err != nil {
			contract.LogFatal("Failed to get result store status", err)
		}
		resultstore.PrintStoreStatus(status)
	},
}

// resultsClearCmd clears the stored evaluation data.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored evaluation runs and metric rows",
	Long: `Delete all stored evaluation runs and their metric rows.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  modelmeter results export --store-backend sqlite --output-file backup.parquet
  modelmeter results clear --store-backend sqlite`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := resultstore.GetStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear result data", err)
		}
		fmt.Println("Result data cleared successfully.")
	},
}

// resultsExportCmd exports stored metric rows to a Parquet file.
var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored results to Parquet for BI tools and analytics",
	Long: `Export all stored metric rows to Parquet format for analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter

Examples:
  # Export all data
  modelmeter results export --store-backend sqlite --output-file results.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('results.parquet') LIMIT 10"`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := resultstore.ExportToParquet(resultstore.GetStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export result data", err)
		}
	},
}

// resultsMigrateCmd runs database migrations for the result store.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the result store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  modelmeter results migrate --store-backend sqlite

  # Migrate to specific version
  modelmeter results migrate --store-backend sqlite --target-version 1

  # Rollback to initial state
  modelmeter results migrate --store-backend sqlite --target-version 0`,
	PreRunE: resultsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := resultstore.MigrateStore(cfg.StoreBackend, cfg.StoreConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

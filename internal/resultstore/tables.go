package resultstore

import (
	"database/sql"
	"fmt"

	"github.com/huangsam/modelmeter/schema"
)

// createResultTables creates the result tracking tables.
func createResultTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{evalRunsTable, getCreateEvalRunsQuery(backend)},
		{metricRowsTable, getCreateMetricRowsQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateEvalRunsQuery returns the CREATE TABLE query for modelmeter_eval_runs.
func getCreateEvalRunsQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+`
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				run_duration_ms BIGINT,
				data_path VARCHAR(512) NOT NULL,
				row_count INT NOT NULL,
				params TEXT
			);`, evalRunsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (
				run_id BIGSERIAL PRIMARY KEY,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				run_duration_ms BIGINT,
				data_path TEXT NOT NULL,
				row_count INT NOT NULL,
				params TEXT
			);`, evalRunsTable)

	default: // SQLite
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				start_time TEXT NOT NULL,
				end_time TEXT,
				run_duration_ms INTEGER,
				data_path TEXT NOT NULL,
				row_count INTEGER NOT NULL,
				params TEXT
			);`, evalRunsTable)
	}
}

// getCreateMetricRowsQuery returns the CREATE TABLE query for modelmeter_metric_rows.
func getCreateMetricRowsQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+`
				run_id BIGINT NOT NULL,
				group_key VARCHAR(512) NOT NULL,
				metric VARCHAR(100) NOT NULL,
				estimator VARCHAR(50) NOT NULL,
				value DOUBLE NOT NULL,
				direction VARCHAR(20) NOT NULL,
				kind VARCHAR(20) NOT NULL,
				PRIMARY KEY (run_id, group_key, metric)
			);`, metricRowsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (
				run_id BIGINT NOT NULL,
				group_key TEXT NOT NULL,
				metric TEXT NOT NULL,
				estimator TEXT NOT NULL,
				value DOUBLE PRECISION NOT NULL,
				direction TEXT NOT NULL,
				kind TEXT NOT NULL,
				PRIMARY KEY (run_id, group_key, metric)
			);`, metricRowsTable)

	default: // SQLite
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (
				run_id INTEGER NOT NULL,
				group_key TEXT NOT NULL,
				metric TEXT NOT NULL,
				estimator TEXT NOT NULL,
				value REAL NOT NULL,
				direction TEXT NOT NULL,
				kind TEXT NOT NULL,
				PRIMARY KEY (run_id, group_key, metric)
			);`, metricRowsTable)
	}
}

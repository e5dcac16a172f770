package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"busquery.onebusaway.org/internal/logging"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name %q", name)
	}
	return nil
}

// readSQLite reads every row of tableName. Column names are matched the same
// way spreadsheet headers are.
func readSQLite(ctx context.Context, path, tableName string, logger *slog.Logger) (*Table, error) {
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	defer logging.SafeCloseWithLogging(db, logger, "close_sqlite")

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", tableName))
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", tableName, err)
	}
	defer logging.SafeCloseWithLogging(rows, logger, "close_sqlite_rows")

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading columns: %w", err)
	}

	var records [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		record := make([]string, len(header))
		for i, c := range cells {
			if c.Valid {
				record[i] = c.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return buildTable(header, records)
}

// WriteSQLite creates (or replaces) tableName in the database at path and
// stores every row of the table in it.
func WriteSQLite(ctx context.Context, table *Table, path, tableName string, logger *slog.Logger) (err error) {
	if tableName == "" {
		tableName = DefaultTableName
	}
	if err := validateTableName(tableName); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer logging.HandleDeferredError(&err, db.Close, logger, "close_sqlite")

	header, records := table.records()
	quoted := make([]string, len(header))
	placeholders := make([]string, len(header))
	for i, h := range header {
		quoted[i] = fmt.Sprintf("%q TEXT", h)
		placeholders[i] = "?"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, logger, "write_sqlite")

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)); err != nil {
		return fmt.Errorf("error dropping %s: %w", tableName, err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", tableName, strings.Join(quoted, ", "))); err != nil {
		return fmt.Errorf("error creating %s: %w", tableName, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", tableName, strings.Join(placeholders, ", "))
	for _, record := range records {
		args := make([]any, len(record))
		for i, v := range record {
			args[i] = v
		}
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("error inserting row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

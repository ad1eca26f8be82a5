package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
)

var migrationFiles = []string{
	"000001_create_products_table.up.sql",
	"000002_create_variants_table.up.sql",
	"000003_add_catalogue_indexes.up.sql",
}

// RunMigrations applies every up migration found in dir, each in its own transaction.
// All statements are idempotent so reruns are safe.
func RunMigrations(db *sqlx.DB, dir string) error {
	for _, name := range migrationFiles {
		path := filepath.Join(dir, name)
		sql, err := os.ReadFile(path)
		if err != nil {
			absPath, _ := filepath.Abs(path)
			return fmt.Errorf("failed to read migration %s (absolute: %s): %w", path, absPath, err)
		}

		if err := executeMigration(db, string(sql)); err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
	}

	return nil
}

func executeMigration(db *sqlx.DB, sql string) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(sql); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

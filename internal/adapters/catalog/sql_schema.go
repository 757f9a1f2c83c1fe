package catalog

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/domain"
	"errors"
	"fmt"
	"strings"
)

// Initialize the catalog schema. The statements are portable between
// Postgres and SQLite.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationQuery := `
	CREATE TABLE IF NOT EXISTS catalog_location (
		location_id TEXT PRIMARY KEY
	);
	`

	createCentersQuery := `
	CREATE TABLE IF NOT EXISTS centers (
		center_id TEXT PRIMARY KEY,
		priority INTEGER NOT NULL
	);
	`

	createStockQuery := `
	CREATE TABLE IF NOT EXISTS center_stock (
		center_id TEXT NOT NULL REFERENCES centers(center_id),
		product TEXT NOT NULL,
		PRIMARY KEY (center_id, product)
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
		node_a TEXT NOT NULL,
		node_b TEXT NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (node_a, node_b)
	);
	`

	statements := []string{
		createLocationQuery,
		createCentersQuery,
		createStockQuery,
		createDistancesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// placeholders returns n bind parameters in the syntax of driver.
func placeholders(driver string, n int) string {
	ph := make([]string, n)
	for i := range ph {
		if driver == "pgx" {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

// SeedCatalog replaces the stored catalog with spec.
// spec is validated first so an invalid catalog never reaches the database.
func SeedCatalog(ctx context.Context, db *sql.DB, driver string, spec domain.CatalogSpec) error {
	if db == nil {
		return errors.New("seed catalog: DB is nil")
	}

	cat, err := domain.NewCatalog(spec)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	normalized := cat.Spec()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"center_stock", "distances", "centers", "catalog_location"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("seed catalog: clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO catalog_location (location_id) VALUES ("+placeholders(driver, 1)+")",
		string(normalized.Location),
	); err != nil {
		return fmt.Errorf("seed catalog: insert location: %w", err)
	}

	centerStmt, err := tx.PrepareContext(ctx, "INSERT INTO centers (center_id, priority) VALUES ("+placeholders(driver, 2)+")")
	if err != nil {
		return fmt.Errorf("seed catalog: prepare centers insert: %w", err)
	}
	defer centerStmt.Close()

	stockStmt, err := tx.PrepareContext(ctx, "INSERT INTO center_stock (center_id, product) VALUES ("+placeholders(driver, 2)+")")
	if err != nil {
		return fmt.Errorf("seed catalog: prepare stock insert: %w", err)
	}
	defer stockStmt.Close()

	for i, c := range normalized.Centers {
		if _, err := centerStmt.ExecContext(ctx, string(c.ID), i+1); err != nil {
			return fmt.Errorf("seed catalog: insert center %q: %w", c.ID, err)
		}
		for _, p := range c.Stock {
			if _, err := stockStmt.ExecContext(ctx, string(c.ID), string(p)); err != nil {
				return fmt.Errorf("seed catalog: insert stock %q/%q: %w", c.ID, p, err)
			}
		}
	}

	legStmt, err := tx.PrepareContext(ctx, "INSERT INTO distances (node_a, node_b, distance) VALUES ("+placeholders(driver, 3)+")")
	if err != nil {
		return fmt.Errorf("seed catalog: prepare distances insert: %w", err)
	}
	defer legStmt.Close()

	for _, l := range normalized.Distances {
		if _, err := legStmt.ExecContext(ctx, string(l.From), string(l.To), l.Distance); err != nil {
			return fmt.Errorf("seed catalog: insert distance %q-%q: %w", l.From, l.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}

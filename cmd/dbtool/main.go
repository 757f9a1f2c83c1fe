package main

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/adapters/catalog"
	"delivery-cost-service/internal/config"
	"delivery-cost-service/internal/platform/db"
	"delivery-cost-service/internal/ports"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// dbtool creates the catalog schema and seeds it from CATALOG_PATH, or from
// the embedded default catalog when CATALOG_PATH is unset.
//
// "dbtool export" instead writes the stored catalog to stdout as YAML.
func main() {
	config.LoadDotEnv()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}
	driver := config.Get("DB_DRIVER", db.DriverFor(databaseURL))

	conn, err := db.Open(driver, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if len(os.Args) > 1 && os.Args[1] == "export" {
		if err := exportCatalog(context.Background(), conn, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	var src ports.CatalogSource = catalog.DefaultSource{}
	if path := config.Get("CATALOG_PATH", ""); path != "" {
		src = catalog.NewFileSource(path)
	}

	if err := initAndSeed(context.Background(), conn, driver, src); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, driver string, src ports.CatalogSource) error {
	spec, err := src.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	log.Println("Initializing database schema...")
	if err := catalog.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := catalog.SeedCatalog(ctx, conn, driver, spec); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	// Read the catalog back through the same path the server uses.
	cat, err := catalog.Build(ctx, catalog.NewSQLSource(conn))
	if err != nil {
		return fmt.Errorf("seed verification failed: %w", err)
	}
	log.Printf("Seeding complete. centers=%d fingerprint=%s", len(cat.Centers()), cat.Fingerprint())

	return nil
}

// exportCatalog writes the stored catalog in the layout CATALOG_PATH accepts.
func exportCatalog(ctx context.Context, conn *sql.DB, w io.Writer) error {
	cat, err := catalog.Build(ctx, catalog.NewSQLSource(conn))
	if err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}

	out, err := catalog.MarshalYAML(cat.Spec())
	if err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("export catalog: write: %w", err)
	}
	return nil
}

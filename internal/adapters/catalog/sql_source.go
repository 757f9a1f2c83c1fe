package catalog

import (
	"context"
	"database/sql"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQLSource loads the catalog from the tables created by InitSchema.
// It only reads; the server calls it once at startup.
type SQLSource struct {
	DB *sql.DB
}

func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{DB: db}
}

func (s *SQLSource) LoadCatalog(ctx context.Context) (_ domain.CatalogSpec, err error) {
	defer obs.Time(ctx, "catalog.sql.LoadCatalog")(&err)

	if s.DB == nil {
		return domain.CatalogSpec{}, errors.New("sql catalog source: DB is nil")
	}

	var spec domain.CatalogSpec

	var location string
	err = s.DB.QueryRowContext(ctx, `SELECT location_id FROM catalog_location`).Scan(&location)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CatalogSpec{}, errors.New("load catalog: catalog_location is empty (run dbtool to seed)")
	}
	if err != nil {
		return domain.CatalogSpec{}, fmt.Errorf("load catalog: query catalog_location: %w", err)
	}
	spec.Location = domain.LocationID(location)

	centers, err := s.loadCenters(ctx)
	if err != nil {
		return domain.CatalogSpec{}, err
	}
	spec.Centers = centers

	legs, err := s.loadDistances(ctx)
	if err != nil {
		return domain.CatalogSpec{}, err
	}
	spec.Distances = legs

	return spec, nil
}

func (s *SQLSource) loadCenters(ctx context.Context) ([]domain.CenterSpec, error) {
	query := `
	SELECT
		c.center_id,
		s.product
	FROM centers c
	LEFT JOIN center_stock s ON s.center_id = c.center_id
	ORDER BY c.priority, c.center_id, s.product;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query centers: %w", err)
	}
	defer rows.Close()

	centers := make([]domain.CenterSpec, 0, 8)
	for rows.Next() {
		var id string
		var product sql.NullString
		if err := rows.Scan(&id, &product); err != nil {
			return nil, fmt.Errorf("load catalog: scan center row: %w", err)
		}

		if n := len(centers); n == 0 || centers[n-1].ID != domain.CenterID(id) {
			centers = append(centers, domain.CenterSpec{ID: domain.CenterID(id)})
		}
		// A center without stock keeps an empty list and is rejected by validation.
		if product.Valid {
			last := &centers[len(centers)-1]
			last.Stock = append(last.Stock, domain.Product(product.String))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: center row iteration: %w", err)
	}

	return centers, nil
}

func (s *SQLSource) loadDistances(ctx context.Context) ([]domain.Leg, error) {
	query := `
	SELECT
		node_a,
		node_b,
		distance
	FROM distances
	ORDER BY node_a, node_b;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query distances: %w", err)
	}
	defer rows.Close()

	legs := make([]domain.Leg, 0, 16)
	for rows.Next() {
		var a, b string
		var d float64
		if err := rows.Scan(&a, &b, &d); err != nil {
			return nil, fmt.Errorf("load catalog: scan distance row: %w", err)
		}
		legs = append(legs, domain.Leg{From: domain.NodeID(a), To: domain.NodeID(b), Distance: d})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: distance row iteration: %w", err)
	}

	return legs, nil
}

package catalog

import (
	"context"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/ports"
	"fmt"
)

// Build loads a catalog description from src and validates it.
func Build(ctx context.Context, src ports.CatalogSource) (*domain.Catalog, error) {
	spec, err := src.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	cat, err := domain.NewCatalog(spec)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}

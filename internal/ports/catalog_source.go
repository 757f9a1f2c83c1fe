package ports

import (
	"context"
	"delivery-cost-service/internal/domain"
)

// Port: a boundary for loading the static catalog description.
// Sources are read once at startup; the resulting spec is validated by
// domain.NewCatalog before use.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (domain.CatalogSpec, error)
}

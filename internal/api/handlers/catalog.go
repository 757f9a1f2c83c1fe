package handlers

import (
	"delivery-cost-service/internal/api/dto"
	"delivery-cost-service/internal/domain"
	"net/http"
)

// CatalogHandler exposes a read-only view of the loaded catalog.
type CatalogHandler struct {
	Catalog *domain.Catalog
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewCatalogResponse(h.Catalog))
}

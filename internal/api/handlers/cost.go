package handlers

import (
	"context"
	"delivery-cost-service/internal/api/dto"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/obs"
	"delivery-cost-service/internal/services"
	"errors"
	"log"
	"net/http"
)

const maxOrderBodyBytes = 1 << 20

// CostEstimator computes the minimum delivery cost of an order.
type CostEstimator interface {
	MinimumCost(ctx context.Context, order domain.Order) (float64, error)
}

type CostHandler struct {
	Costs CostEstimator
}

// Calculate validates the order body and returns its minimum delivery cost.
func (h *CostHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxOrderBodyBytes)
	defer body.Close()

	order, err := dto.DecodeOrder(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cost, err := h.Costs.MinimumCost(r.Context(), order)
	if err != nil {
		if errors.Is(err, services.ErrTooManyCenters) {
			writeError(w, r, http.StatusUnprocessableEntity, "too many centers to route")
			return
		}
		log.Printf("req_id=%s calculate delivery cost failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CostResponse{MinimumCost: cost})
}

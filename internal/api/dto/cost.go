package dto

type CostResponse struct {
	MinimumCost float64 `json:"minimum_cost"`
}

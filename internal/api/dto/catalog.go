package dto

import "delivery-cost-service/internal/domain"

type CenterResponse struct {
	CenterID string   `json:"center_id"`
	Priority int      `json:"priority"`
	Stock    []string `json:"stock"`
}

type DistanceResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type CatalogResponse struct {
	Location    string             `json:"location"`
	Fingerprint string             `json:"fingerprint"`
	Centers     []CenterResponse   `json:"centers"`
	Distances   []DistanceResponse `json:"distances"`
}

func NewCatalogResponse(cat *domain.Catalog) CatalogResponse {
	spec := cat.Spec()

	res := CatalogResponse{
		Location:    string(spec.Location),
		Fingerprint: cat.Fingerprint(),
		Centers:     make([]CenterResponse, 0, len(spec.Centers)),
		Distances:   make([]DistanceResponse, 0, len(spec.Distances)),
	}
	for i, c := range spec.Centers {
		stock := make([]string, 0, len(c.Stock))
		for _, p := range c.Stock {
			stock = append(stock, string(p))
		}
		res.Centers = append(res.Centers, CenterResponse{CenterID: string(c.ID), Priority: i + 1, Stock: stock})
	}
	for _, l := range spec.Distances {
		res.Distances = append(res.Distances, DistanceResponse{From: string(l.From), To: string(l.To), Distance: l.Distance})
	}

	return res
}

package services

import (
	"delivery-cost-service/internal/domain"
)

// ResolveCenters selects the centers needed to source order.
//
// Each product with a positive quantity is sourced from the first center, in
// catalog priority order, that stocks it. Alternative sourcing is never
// explored: a product stocked at several centers always goes to the
// highest-priority one. Products stocked nowhere are dropped silently.
// The result is in catalog priority order.
func ResolveCenters(cat *domain.Catalog, order domain.Order) []domain.CenterID {
	centers := cat.Centers()

	required := make(map[domain.CenterID]struct{}, len(centers))
	for product, qty := range order {
		if qty <= 0 {
			continue
		}
		for _, c := range centers {
			if cat.Stocks(c, product) {
				required[c] = struct{}{}
				break
			}
		}
	}

	out := make([]domain.CenterID, 0, len(required))
	for _, c := range centers {
		if _, ok := required[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// UnitsForCenter sums the positive quantities of every ordered product that
// center stocks, whether or not ResolveCenters assigned the product to it.
// A product stocked at two required centers is counted at both.
func UnitsForCenter(cat *domain.Catalog, order domain.Order, center domain.CenterID) int {
	total := 0
	for product, qty := range order {
		if qty > 0 && cat.Stocks(center, product) {
			total += qty
		}
	}
	return total
}

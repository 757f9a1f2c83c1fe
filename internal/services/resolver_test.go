package services

import (
	"delivery-cost-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCenters(t *testing.T) {
	cat := newTestCatalog(t)

	tests := []struct {
		name  string
		order domain.Order
		want  []domain.CenterID
	}{
		{name: "empty", order: domain.Order{}, want: []domain.CenterID{}},
		{name: "non-positive only", order: domain.Order{"A": 0, "D": -2}, want: []domain.CenterID{}},
		{name: "single center", order: domain.Order{"A": 1}, want: []domain.CenterID{"C1"}},
		{name: "priority wins for shared product", order: domain.Order{"B": 3}, want: []domain.CenterID{"C1"}},
		{name: "first stocking center", order: domain.Order{"D": 1, "I": 1}, want: []domain.CenterID{"C2"}},
		{name: "unknown product dropped", order: domain.Order{"Z": 5}, want: []domain.CenterID{}},
		{name: "all centers", order: domain.Order{"A": 1, "E": 1, "F": 1}, want: []domain.CenterID{"C1", "C2", "C3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ResolveCenters(cat, tc.order))
		})
	}
}

func TestUnitsForCenterCountsEveryStockedProduct(t *testing.T) {
	cat := newTestCatalog(t)
	order := domain.Order{"B": 2, "D": 1, "A": -4, "Z": 9}

	// B is assigned to C1 but C2 stocks it too, so it counts at both.
	require.Equal(t, 2, UnitsForCenter(cat, order, "C1"))
	require.Equal(t, 3, UnitsForCenter(cat, order, "C2"))
	require.Equal(t, 1, UnitsForCenter(cat, order, "C3"))
	require.Equal(t, 0, UnitsForCenter(cat, order, "C9"))
}

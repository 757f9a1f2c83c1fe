package services

import (
	"delivery-cost-service/internal/domain"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestCatalog builds the three-center catalog the service ships with.
func newTestCatalog(t testing.TB) *domain.Catalog {
	t.Helper()

	cat, err := domain.NewCatalog(domain.CatalogSpec{
		Location: "L1",
		Centers: []domain.CenterSpec{
			{ID: "C1", Stock: []domain.Product{"A", "B", "C", "G"}},
			{ID: "C2", Stock: []domain.Product{"B", "D", "E", "H", "I"}},
			{ID: "C3", Stock: []domain.Product{"C", "D", "F", "G", "H", "I"}},
		},
		Distances: []domain.Leg{
			{From: "C1", To: "L1", Distance: 10},
			{From: "C2", To: "L1", Distance: 20},
			{From: "C3", To: "L1", Distance: 30},
			{From: "C1", To: "C2", Distance: 15},
			{From: "C1", To: "C3", Distance: 35},
			{From: "C2", To: "C3", Distance: 25},
		},
	})
	require.NoError(t, err)
	return cat
}

// newLineCatalog builds n centers, each stocking one product P<i>, placed on
// a line so that every pair has a distance.
func newLineCatalog(t testing.TB, n int) *domain.Catalog {
	t.Helper()

	spec := domain.CatalogSpec{Location: "L"}
	for i := 0; i < n; i++ {
		id := domain.CenterID(fmt.Sprintf("C%d", i))
		spec.Centers = append(spec.Centers, domain.CenterSpec{
			ID:    id,
			Stock: []domain.Product{domain.Product(fmt.Sprintf("P%d", i))},
		})
		spec.Distances = append(spec.Distances, domain.Leg{From: id.Node(), To: "L", Distance: float64(i + 1)})
		for j := 0; j < i; j++ {
			spec.Distances = append(spec.Distances, domain.Leg{
				From:     id.Node(),
				To:       domain.NodeID(fmt.Sprintf("C%d", j)),
				Distance: float64(i - j),
			})
		}
	}

	cat, err := domain.NewCatalog(spec)
	require.NoError(t, err)
	return cat
}

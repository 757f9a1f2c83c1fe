package services

import (
	"context"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/obs"
	"errors"
	"fmt"
	"math"
	"slices"
)

// DefaultMaxCenters bounds the number of required centers the optimizer will
// enumerate; 8! orderings per origin is still well under a millisecond.
const DefaultMaxCenters = 8

// ErrTooManyCenters is returned when an order needs more centers than MaxCenters.
var ErrTooManyCenters = errors.New("too many centers to route")

// RouteOptimizer finds the cheapest way to collect an order from its
// required centers and deliver it to the catalog location.
//
// The search is brute force: every declared center is tried as an origin and
// every ordering of the required centers is walked. Only orderings that
// contain the origin somewhere are considered for that origin, so an origin
// that is not itself required contributes no routes. This keeps the search
// exhaustive over the routes the cost model defines and is only tractable
// because the number of required centers is capped by MaxCenters.
type RouteOptimizer struct {
	Catalog    *domain.Catalog
	MaxCenters int
}

// NewRouteOptimizer returns an optimizer over cat; a non-positive maxCenters uses DefaultMaxCenters.
func NewRouteOptimizer(cat *domain.Catalog, maxCenters int) *RouteOptimizer {
	if maxCenters <= 0 {
		maxCenters = DefaultMaxCenters
	}
	return &RouteOptimizer{Catalog: cat, MaxCenters: maxCenters}
}

// Optimize returns the minimum total cost for order along with the route
// that achieves it. An order that needs no center costs 0.
func (o *RouteOptimizer) Optimize(ctx context.Context, order domain.Order) (_ domain.Quote, err error) {
	defer obs.Time(ctx, "route.optimize")(&err)

	if o.Catalog == nil {
		return domain.Quote{}, errors.New("optimize: catalog is nil")
	}

	required := ResolveCenters(o.Catalog, order)
	if len(required) == 0 {
		return domain.Quote{MinimumCost: 0, RequiredCenters: required}, nil
	}

	limit := o.MaxCenters
	if limit <= 0 {
		limit = DefaultMaxCenters
	}
	if len(required) > limit {
		return domain.Quote{}, fmt.Errorf(
			"optimize: %d required centers exceeds limit %d: %w",
			len(required), limit, ErrTooManyCenters,
		)
	}

	units := make(map[domain.CenterID]int, len(required))
	for _, c := range required {
		units[c] = UnitsForCenter(o.Catalog, order, c)
	}

	quote := domain.Quote{
		MinimumCost:     math.Inf(1),
		RequiredCenters: required,
	}

	for _, start := range o.Catalog.Centers() {
		for perm := range Permutations(required) {
			if !slices.Contains(perm, start) {
				continue
			}

			cost, err := walkRoute(o.Catalog, start, perm, units)
			if err != nil {
				return domain.Quote{}, fmt.Errorf("optimize: origin %q: %w", start, err)
			}
			quote.RoutesEvaluated++

			// Strict comparison keeps the first route found on ties.
			if cost < quote.MinimumCost {
				quote.MinimumCost = cost
				quote.Best = domain.Route{Origin: start, Stops: slices.Clone(perm)}
			}
		}
	}

	if quote.RoutesEvaluated == 0 {
		return domain.Quote{}, fmt.Errorf("optimize: no route accepted for centers %v", required)
	}

	return quote, nil
}

// RouteCost prices a single route for order under the same cost model the
// optimizer uses.
func RouteCost(cat *domain.Catalog, order domain.Order, route domain.Route) (float64, error) {
	units := make(map[domain.CenterID]int, len(route.Stops))
	for _, c := range route.Stops {
		units[c] = UnitsForCenter(cat, order, c)
	}
	return walkRoute(cat, route.Origin, route.Stops, units)
}

// walkRoute charges, for each center in stops:
//   - a relocation leg at one unit from the current position when it differs
//     from the center;
//   - a delivery leg from the center to the location at units[center].
//
// After a center is served the vehicle is at the location, so the next
// center is reached from there rather than directly from the previous one.
func walkRoute(
	cat *domain.Catalog,
	start domain.CenterID,
	stops []domain.CenterID,
	units map[domain.CenterID]int,
) (float64, error) {
	loc := cat.Location().Node()
	current := start.Node()
	visited := make(map[domain.CenterID]struct{}, len(stops))
	total := 0.0

	for _, c := range stops {
		if _, seen := visited[c]; seen {
			continue
		}

		if current != c.Node() {
			d, err := cat.Distance(current, c.Node())
			if err != nil {
				return 0, fmt.Errorf("walk route: relocation leg: %w", err)
			}
			total += domain.CostPerUnit(d, 1)
		}

		d, err := cat.Distance(c.Node(), loc)
		if err != nil {
			return 0, fmt.Errorf("walk route: delivery leg: %w", err)
		}
		total += domain.CostPerUnit(d, units[c])

		current = loc
		visited[c] = struct{}{}
	}

	return total, nil
}

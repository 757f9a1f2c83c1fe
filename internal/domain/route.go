package domain

// Route is one visiting sequence of required centers together with the
// origin the vehicle starts from.
type Route struct {
	Origin CenterID
	Stops  []CenterID
}

// Quote is the outcome of a route optimization for a single order.
// Best is the zero Route when no center has to be visited.
type Quote struct {
	MinimumCost     float64
	RequiredCenters []CenterID
	Best            Route
	RoutesEvaluated int
}

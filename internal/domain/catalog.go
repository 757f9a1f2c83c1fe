package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

var (
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrMissingDistance = errors.New("missing distance")
)

// CenterSpec declares a center and the products it stocks.
type CenterSpec struct {
	ID    CenterID
	Stock []Product
}

// Leg declares the distance between two nodes. Legs are undirected.
type Leg struct {
	From     NodeID
	To       NodeID
	Distance float64
}

// CatalogSpec is the raw, unvalidated description of a catalog.
// The order of Centers is the sourcing priority order.
type CatalogSpec struct {
	Location  LocationID
	Centers   []CenterSpec
	Distances []Leg
}

type edge struct{ a, b NodeID }

func newEdge(x, y NodeID) edge {
	if y < x {
		x, y = y, x
	}
	return edge{a: x, b: y}
}

// Catalog is the static center/stock/distance configuration.
//
// A Catalog is immutable once NewCatalog returns and is safe to share
// between goroutines. Validation guarantees that every center-center and
// center-location distance is defined, so lookups made by the optimizer
// cannot fail for a catalog built through NewCatalog.
type Catalog struct {
	location    LocationID
	centers     []CenterID
	stock       map[CenterID]map[Product]struct{}
	distances   map[edge]float64
	fingerprint string
}

// NewCatalog validates spec and builds an immutable Catalog.
func NewCatalog(spec CatalogSpec) (*Catalog, error) {
	loc := LocationID(strings.TrimSpace(string(spec.Location)))
	if loc == "" {
		return nil, fmt.Errorf("new catalog: %w: location must not be empty", ErrInvalidCatalog)
	}
	if len(spec.Centers) == 0 {
		return nil, fmt.Errorf("new catalog: %w: at least one center is required", ErrInvalidCatalog)
	}

	c := &Catalog{
		location:  loc,
		centers:   make([]CenterID, 0, len(spec.Centers)),
		stock:     make(map[CenterID]map[Product]struct{}, len(spec.Centers)),
		distances: make(map[edge]float64, len(spec.Distances)),
	}

	for i, cs := range spec.Centers {
		id := CenterID(strings.TrimSpace(string(cs.ID)))
		if id == "" {
			return nil, fmt.Errorf("new catalog: %w: center at index %d has an empty id", ErrInvalidCatalog, i)
		}
		if id.Node() == loc.Node() {
			return nil, fmt.Errorf("new catalog: %w: center %q collides with location id", ErrInvalidCatalog, id)
		}
		if _, dup := c.stock[id]; dup {
			return nil, fmt.Errorf("new catalog: %w: duplicate center %q", ErrInvalidCatalog, id)
		}
		if len(cs.Stock) == 0 {
			return nil, fmt.Errorf("new catalog: %w: center %q stocks no products", ErrInvalidCatalog, id)
		}

		products := make(map[Product]struct{}, len(cs.Stock))
		for _, raw := range cs.Stock {
			p := Product(strings.TrimSpace(string(raw)))
			if p == "" {
				return nil, fmt.Errorf("new catalog: %w: center %q lists an empty product", ErrInvalidCatalog, id)
			}
			products[p] = struct{}{}
		}

		c.centers = append(c.centers, id)
		c.stock[id] = products
	}

	for i, leg := range spec.Distances {
		from := NodeID(strings.TrimSpace(string(leg.From)))
		to := NodeID(strings.TrimSpace(string(leg.To)))
		if !c.isNode(from) || !c.isNode(to) {
			return nil, fmt.Errorf("new catalog: %w: leg %d references unknown node (%q, %q)", ErrInvalidCatalog, i, from, to)
		}
		if from == to {
			return nil, fmt.Errorf("new catalog: %w: leg %d is a self pair %q", ErrInvalidCatalog, i, from)
		}
		d := leg.Distance
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return nil, fmt.Errorf("new catalog: %w: leg %q-%q has invalid distance %v", ErrInvalidCatalog, from, to, d)
		}

		e := newEdge(from, to)
		if prev, ok := c.distances[e]; ok && prev != d {
			return nil, fmt.Errorf(
				"new catalog: %w: asymmetric distance %q-%q (%v vs %v)",
				ErrInvalidCatalog, from, to, prev, d,
			)
		}
		c.distances[e] = d
	}

	// Every pair the optimizer can ever look up must be present.
	for i, a := range c.centers {
		if _, ok := c.distances[newEdge(a.Node(), loc.Node())]; !ok {
			return nil, fmt.Errorf("new catalog: %w: %w %q-%q", ErrInvalidCatalog, ErrMissingDistance, a, loc)
		}
		for _, b := range c.centers[i+1:] {
			if _, ok := c.distances[newEdge(a.Node(), b.Node())]; !ok {
				return nil, fmt.Errorf("new catalog: %w: %w %q-%q", ErrInvalidCatalog, ErrMissingDistance, a, b)
			}
		}
	}

	c.fingerprint = c.computeFingerprint()
	return c, nil
}

func (c *Catalog) isNode(n NodeID) bool {
	if n == c.location.Node() {
		return true
	}
	_, ok := c.stock[CenterID(n)]
	return ok
}

// Location returns the fixed delivery destination.
func (c *Catalog) Location() LocationID { return c.location }

// Centers returns the declared centers in priority order.
func (c *Catalog) Centers() []CenterID { return slices.Clone(c.centers) }

// StockOf returns the products stocked at center, sorted.
// Unknown centers stock nothing.
func (c *Catalog) StockOf(center CenterID) []Product {
	out := make([]Product, 0, len(c.stock[center]))
	for p := range c.stock[center] {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Stocks reports whether center stocks product.
func (c *Catalog) Stocks(center CenterID, product Product) bool {
	_, ok := c.stock[center][product]
	return ok
}

// Distance returns the symmetric distance between two distinct nodes.
func (c *Catalog) Distance(a, b NodeID) (float64, error) {
	d, ok := c.distances[newEdge(a, b)]
	if !ok {
		return 0, fmt.Errorf("distance %q-%q: %w", a, b, ErrMissingDistance)
	}
	return d, nil
}

// Fingerprint identifies the catalog contents. Catalogs built from
// equivalent specs share a fingerprint.
func (c *Catalog) Fingerprint() string { return c.fingerprint }

// Spec returns a normalized copy of the catalog description: centers in
// priority order with sorted stock, legs sorted by endpoint.
func (c *Catalog) Spec() CatalogSpec {
	spec := CatalogSpec{
		Location: c.location,
		Centers:  make([]CenterSpec, 0, len(c.centers)),
	}
	for _, id := range c.centers {
		spec.Centers = append(spec.Centers, CenterSpec{ID: id, Stock: c.StockOf(id)})
	}

	edges := make([]edge, 0, len(c.distances))
	for e := range c.distances {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(x, y edge) int {
		if n := strings.Compare(string(x.a), string(y.a)); n != 0 {
			return n
		}
		return strings.Compare(string(x.b), string(y.b))
	})
	spec.Distances = make([]Leg, 0, len(edges))
	for _, e := range edges {
		spec.Distances = append(spec.Distances, Leg{From: e.a, To: e.b, Distance: c.distances[e]})
	}

	return spec
}

func (c *Catalog) computeFingerprint() string {
	h := sha256.New()
	spec := c.Spec()
	fmt.Fprintf(h, "location=%q\n", spec.Location)
	for _, cs := range spec.Centers {
		fmt.Fprintf(h, "center=%q stock=%q\n", cs.ID, cs.Stock)
	}
	for _, leg := range spec.Distances {
		fmt.Fprintf(h, "leg=%q,%q d=%v\n", leg.From, leg.To, leg.Distance)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// CostPerUnit charges distance once per shipped unit.
func CostPerUnit(distance float64, units int) float64 {
	return distance * float64(units)
}

package domain

import (
	"slices"
	"strconv"
	"strings"
)

// Order maps each requested product to its quantity.
// Entries with a quantity of zero or less are ignored by every computation.
type Order map[Product]int

// Products returns the products with a strictly positive quantity, sorted.
func (o Order) Products() []Product {
	out := make([]Product, 0, len(o))
	for p, qty := range o {
		if qty > 0 {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}

// Key returns a canonical encoding of the positive entries of the order.
// Two orders that always produce the same cost share the same key.
func (o Order) Key() string {
	var b strings.Builder
	for i, p := range o.Products() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(string(p)))
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(o[p]))
	}
	return b.String()
}

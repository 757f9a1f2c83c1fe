package dto

import (
	"bytes"
	"delivery-cost-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxQuantity bounds a single quantity so per-center unit sums cannot overflow.
const MaxQuantity = 1_000_000_000

var ErrInvalidOrder = errors.New("invalid order")

// DecodeOrder reads a JSON object mapping product ids to integer quantities.
//
// Zero and negative quantities are accepted; they are ignored downstream.
// Anything that is not a single JSON object of integers is rejected:
// strings, fractions, exponents, nulls, nested values and trailing data.
func DecodeOrder(body io.Reader) (domain.Order, error) {
	dec := json.NewDecoder(body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: invalid json body: %w", ErrInvalidOrder, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidOrder)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: body must contain only one JSON object", ErrInvalidOrder)
	}

	order := make(domain.Order, len(raw))
	for product, value := range raw {
		if strings.TrimSpace(product) == "" {
			return nil, fmt.Errorf("%w: product id must not be empty", ErrInvalidOrder)
		}

		qty, err := parseQuantity(value)
		if err != nil {
			return nil, fmt.Errorf("%w: quantity for %q %v", ErrInvalidOrder, product, err)
		}
		order[domain.Product(product)] = qty
	}

	return order, nil
}

func parseQuantity(value json.RawMessage) (int, error) {
	v := bytes.TrimSpace(value)
	// json.Number would also accept a quoted number; only bare literals are quantities.
	if len(v) == 0 || (v[0] != '-' && (v[0] < '0' || v[0] > '9')) {
		return 0, errors.New("must be a number")
	}

	n, err := json.Number(v).Int64()
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	if n > MaxQuantity || n < -MaxQuantity {
		return 0, fmt.Errorf("must be within ±%d", MaxQuantity)
	}

	return int(n), nil
}

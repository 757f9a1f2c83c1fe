package dto

import (
	"delivery-cost-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeOrderAccepts(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.Order
	}{
		{name: "empty object", body: `{}`, want: domain.Order{}},
		{name: "positive", body: `{"A": 1, "G": 3}`, want: domain.Order{"A": 1, "G": 3}},
		{name: "zero and negative kept", body: `{"A": 0, "B": -2}`, want: domain.Order{"A": 0, "B": -2}},
		{name: "unknown product kept", body: `{"Z": 5}`, want: domain.Order{"Z": 5}},
		{name: "surrounding whitespace", body: " \n{\"A\": 2}\n ", want: domain.Order{"A": 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeOrder(strings.NewReader(tc.body))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeOrderRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ``},
		{name: "malformed", body: `{"A": `},
		{name: "array", body: `[1, 2]`},
		{name: "null", body: `null`},
		{name: "string quantity", body: `{"A": "4"}`},
		{name: "fractional quantity", body: `{"A": 1.5}`},
		{name: "exponent quantity", body: `{"A": 1e3}`},
		{name: "null quantity", body: `{"A": null}`},
		{name: "bool quantity", body: `{"A": true}`},
		{name: "nested quantity", body: `{"A": {"qty": 1}}`},
		{name: "empty product", body: `{" ": 1}`},
		{name: "too large", body: `{"A": 1000000001}`},
		{name: "trailing object", body: `{"A": 1}{"B": 2}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeOrder(strings.NewReader(tc.body))
			require.ErrorIs(t, err, ErrInvalidOrder)
		})
	}
}

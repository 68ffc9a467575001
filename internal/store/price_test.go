package store_test

import (
	"testing"

	"github.com/electricpro/storefront/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
	}{
		{name: "shilling with thousands separator", display: "KSh 8,999", want: 8999},
		{name: "dollar with decimals", display: "$12.50", want: 12.5},
		{name: "plain integer", display: "450", want: 450},
		{name: "large grouped amount", display: "KSh 45,000", want: 45000},
		{name: "only first decimal point kept", display: "1.2.3", want: 1.23},
		{name: "no digits", display: "free", want: 0},
		{name: "empty string", display: "", want: 0},
		{name: "lone decimal point", display: ".", want: 0},
		{name: "minus sign dropped", display: "-500", want: 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, store.ParsePrice(tc.display), 1e-9)
		})
	}
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/catalog"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{7, "₹7"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{95000, "₹95,000"},
		{285000, "₹2,85,000"},
		{425000, "₹4,25,000"},
		{815000, "₹8,15,000"},
		{1234567, "₹12,34,567"},
		{10000000, "₹1,00,00,000"},
		{-95000, "-₹95,000"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.FormatPrice(tc.amount), "amount %d", tc.amount)
	}
}

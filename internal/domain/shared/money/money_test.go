package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := Parse(s)
	require.NoError(t, err)
	return v
}

func TestFitsPrecision(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		precision int32
		scale     int32
		want      bool
	}{
		{"rate with four decimals", "123.4567", 8, 4, true},
		{"rate with five decimals", "1.12345", 8, 4, false},
		{"rate at integer limit", "9999.9999", 8, 4, true},
		{"rate over integer limit", "10000.0000", 8, 4, false},
		{"amount with two decimals", "1234567890.12", 12, 2, true},
		{"amount with three decimals", "0.123", 12, 2, false},
		{"amount over integer limit", "10000000000.00", 12, 2, false},
		{"allocation with six decimals", "33.333333", 9, 6, true},
		{"allocation with seven decimals", "33.3333333", 9, 6, false},
		{"trailing zeros are fine", "50.100000", 9, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitsPrecision(d(t, tt.value), tt.precision, tt.scale))
		})
	}
}

func TestIsRate(t *testing.T) {
	assert.True(t, IsRate(d(t, "123.4567")))
	assert.True(t, IsRate(d(t, "0.0001")))
	assert.False(t, IsRate(d(t, "0.00")), "zero rate")
	assert.False(t, IsRate(d(t, "-1.00")), "negative rate")
	assert.False(t, IsRate(d(t, "1.12345")), "five decimal places")
}

func TestIsAmount(t *testing.T) {
	assert.True(t, IsAmount(d(t, "0.00")))
	assert.True(t, IsAmount(d(t, "9999999999.99")))
	assert.False(t, IsAmount(d(t, "-0.01")))
	assert.False(t, IsAmount(d(t, "1.005")))
}

func TestIsAllocation(t *testing.T) {
	assert.True(t, IsAllocation(d(t, "0.000001")))
	assert.True(t, IsAllocation(d(t, "100")))
	assert.False(t, IsAllocation(d(t, "0")))
	assert.False(t, IsAllocation(d(t, "100.000001")))
	assert.False(t, IsAllocation(d(t, "33.3333333")))
}

func TestShare(t *testing.T) {
	got := Share(d(t, "1000.00"), d(t, "50"))
	assert.Equal(t, "500.00", got.StringFixed(2))

	got = Share(d(t, "500.00"), d(t, "50"))
	assert.Equal(t, "250.00", got.StringFixed(2))

	// Per-component rounding: one third of 100.00 rounds to 33.33.
	got = Share(d(t, "100.00"), d(t, "33.333333"))
	assert.Equal(t, "33.33", got.StringFixed(2))
}

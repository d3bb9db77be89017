package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestServiceSystem_CalculateAmounts(t *testing.T) {
	ss := NewServiceSystem(
		uuid.New(), uuid.New(),
		decimal.RequireFromString("50"),
		decimal.RequireFromString("1000.00"),
		decimal.RequireFromString("500.00"),
		CurrencyEUR,
	)

	assert.Equal(t, "500.00", ss.RunAmount().StringFixed(2))
	assert.Equal(t, "250.00", ss.ChgAmount().StringFixed(2))
	assert.Equal(t, "750.00", ss.Amount().StringFixed(2))
}

func TestServiceSystem_RoundsEachComponentSeparately(t *testing.T) {
	// 33.333333% of 10.01 run and 10.01 chg: each component rounds on its
	// own before amount sums them.
	ss := NewServiceSystem(
		uuid.New(), uuid.New(),
		decimal.RequireFromString("33.333333"),
		decimal.RequireFromString("10.01"),
		decimal.RequireFromString("10.01"),
		CurrencyEUR,
	)

	assert.Equal(t, "3.34", ss.RunAmount().StringFixed(2))
	assert.Equal(t, "3.34", ss.ChgAmount().StringFixed(2))
	assert.Equal(t, "6.68", ss.Amount().StringFixed(2))
}

func TestAllocationFanOut_PerComponentRoundingDrift(t *testing.T) {
	// Splitting 100.00 across three systems at 33.333333/33.333333/33.333334
	// rounds each slice to 33.33, so the slices sum to 99.99 while the
	// service total stays 100.00. The drift is inherent to per-component
	// rounding and deliberately not corrected.
	s := buildService(withAmounts("100.00", "0.00"))
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("33.333333"))
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("33.333333"))
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("33.333334"))

	total := decimal.Zero
	for _, ss := range s.ServiceSystems() {
		total = total.Add(ss.RunAmount())
	}

	assert.Equal(t, "99.99", total.StringFixed(2))
	assert.Equal(t, "100.00", s.Amount().StringFixed(2))

	// The allocation percentages themselves still sum to exactly 100, so the
	// approval gate passes.
	assert.True(t, s.TotalAllocation().Equal(decimal.NewFromInt(100)))
}

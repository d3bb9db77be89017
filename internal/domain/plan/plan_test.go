package plan

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/shared/errors"
)

func validPlan(t *testing.T) *Plan {
	t.Helper()
	rate, err := decimal.NewFromString("1.0845")
	require.NoError(t, err)
	return NewPlan("FX-2025", "EUR/USD yearly reference rate", rate, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestNewPlan_AssignsIdentityAndTrims(t *testing.T) {
	rate := decimal.RequireFromString("123.4567")
	p := NewPlan("  FX-2025 ", "  rate  ", rate, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", p.ID().String())
	assert.Equal(t, "FX-2025", p.Code())
	assert.Equal(t, "rate", p.Description())
	assert.True(t, p.Euro().Equal(rate))
}

func TestPlan_Validate_Valid(t *testing.T) {
	p := validPlan(t)
	assert.NoError(t, p.Validate())
}

func TestPlan_Validate_EuroRate(t *testing.T) {
	tests := []struct {
		name string
		euro string
		ok   bool
	}{
		{"zero rate", "0.00", false},
		{"negative rate", "-1.00", false},
		{"five decimal places", "1.12345", false},
		{"four decimal places", "123.4567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlan(t)
			p.ChangeEuro(decimal.RequireFromString(tt.euro))

			err := p.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), "euro rate")
			}
		})
	}
}

func TestPlan_Validate_CollectsAllProblems(t *testing.T) {
	p := validPlan(t)
	p.ChangeCode("")
	p.ChangeDescription(strings.Repeat("x", 256))
	p.ChangeEuro(decimal.Zero)

	err := p.Validate()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "code is required")
	assert.Contains(t, appErr.Message, "description must be at most 255")
	assert.Contains(t, appErr.Message, "euro rate")
}

func TestPlan_Validate_Idempotent(t *testing.T) {
	p := validPlan(t)
	require.NoError(t, p.Validate())

	// Re-validating the entity's own current field values must also pass.
	rebuilt := ReconstructPlan(p.ID(), p.Code(), p.Description(), p.Euro(), p.PlanDate())
	assert.NoError(t, rebuilt.Validate())
}

package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/shared/errors"
)

type serviceParams struct {
	name             string
	description      string
	runAmount        string
	chgAmount        string
	currency         Currency
	responsibleEmail string
}

type serviceOption func(*serviceParams)

func withServiceName(name string) serviceOption {
	return func(p *serviceParams) { p.name = name }
}

func withAmounts(run, chg string) serviceOption {
	return func(p *serviceParams) {
		p.runAmount = run
		p.chgAmount = chg
	}
}

func withCurrency(c Currency) serviceOption {
	return func(p *serviceParams) { p.currency = c }
}

func withResponsibleEmail(email string) serviceOption {
	return func(p *serviceParams) { p.responsibleEmail = email }
}

func buildService(opts ...serviceOption) *Service {
	params := serviceParams{
		name:             "Monitoring platform",
		description:      "Shared observability stack",
		runAmount:        "1000.00",
		chgAmount:        "500.00",
		currency:         CurrencyEUR,
		responsibleEmail: "owner@example.com",
	}
	for _, opt := range opts {
		opt(&params)
	}
	return NewService(
		uuid.New(),
		params.name,
		params.description,
		decimal.RequireFromString(params.runAmount),
		decimal.RequireFromString(params.chgAmount),
		params.currency,
		params.responsibleEmail,
		"provider cost center",
		"local cost center",
		nil,
	)
}

func TestNewService_Defaults(t *testing.T) {
	s := buildService()

	assert.Equal(t, StatusCreated, s.Status())
	assert.False(t, s.IsActive())
	assert.Equal(t, "1500.00", s.Amount().StringFixed(2))
	assert.NoError(t, s.Validate())
}

func TestService_Validate_FieldBounds(t *testing.T) {
	tests := []struct {
		name    string
		opts    []serviceOption
		wantErr string
	}{
		{"name too short", []serviceOption{withServiceName("x")}, "between 2 and 100"},
		{"name too long", []serviceOption{withServiceName(strings.Repeat("n", 101))}, "between 2 and 100"},
		{"negative run amount", []serviceOption{withAmounts("-1.00", "0.00")}, "run amount"},
		{"three decimal places", []serviceOption{withAmounts("1.005", "0.00")}, "run amount"},
		{"unknown currency", []serviceOption{withCurrency("GBP")}, "EUR or USD"},
		{"bad responsible email", []serviceOption{withResponsibleEmail("nope")}, "responsible email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildService(tt.opts...).Validate()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestService_AllocationGate(t *testing.T) {
	tests := []struct {
		name        string
		allocations []string
		status      Status
		ok          bool
	}{
		{"exactly 100", []string{"100"}, StatusApproved, true},
		{"split to exactly 100", []string{"60", "40"}, StatusRejected, true},
		{"just under 100", []string{"99.999999"}, StatusApproved, false},
		{"just over 100", []string{"50", "50.000001"}, StatusRejected, false},
		{"no systems", nil, StatusApproved, false},
		{"under 100 but not terminal", []string{"50"}, StatusAssigned, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildService()
			for _, alloc := range tt.allocations {
				s.AddServiceSystem(uuid.New(), decimal.RequireFromString(alloc))
			}
			s.ChangeStatus(tt.status)

			err := s.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "neither approved nor rejected")
			}
		})
	}
}

func TestService_TerminalLock(t *testing.T) {
	s := buildService()
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("100"))
	s.ChangeStatus(StatusApproved)
	require.NoError(t, s.Validate())

	// Any change after the service went terminal must fail validation.
	s.ChangeName("renamed")
	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "Service cannot be changed after it has been approved or rejected", errors.GetAppError(err).Message)
}

func TestService_TerminalLock_OnReloadedService(t *testing.T) {
	loaded := ReconstructService(
		uuid.New(), uuid.New(),
		"Monitoring platform", "",
		decimal.RequireFromString("100.00"), decimal.Zero, decimal.RequireFromString("100.00"),
		CurrencyEUR,
		"owner@example.com",
		true,
		"", "",
		StatusRejected,
		"validator@example.com",
		nil,
		[]*ServiceSystem{
			ReconstructServiceSystem(uuid.Nil, uuid.New(),
				decimal.RequireFromString("100"),
				decimal.RequireFromString("100.00"), decimal.Zero, decimal.RequireFromString("100.00"),
				CurrencyEUR),
		},
	)

	// Untouched terminal service still validates.
	require.NoError(t, loaded.Validate())

	loaded.ChangeDescription("tweak")
	err := loaded.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be changed after it has been approved or rejected")
}

func TestService_ChangeAmounts_FansOutToSystems(t *testing.T) {
	s := buildService()
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("50"))
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("50"))

	s.ChangeAmounts(decimal.RequireFromString("2000.00"), decimal.RequireFromString("1000.00"))

	assert.Equal(t, "3000.00", s.Amount().StringFixed(2))
	for _, ss := range s.ServiceSystems() {
		assert.Equal(t, "1000.00", ss.RunAmount().StringFixed(2))
		assert.Equal(t, "500.00", ss.ChgAmount().StringFixed(2))
		assert.Equal(t, "1500.00", ss.Amount().StringFixed(2))
	}
}

func TestService_ChangeCurrency_FansOutToSystems(t *testing.T) {
	s := buildService()
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("100"))

	s.ChangeCurrency(CurrencyUSD)

	assert.Equal(t, CurrencyUSD, s.Currency())
	for _, ss := range s.ServiceSystems() {
		assert.Equal(t, CurrencyUSD, ss.Currency())
	}
}

func TestService_ActivationFollowsAllocation(t *testing.T) {
	s := buildService()
	systemID := uuid.New()
	s.AddServiceSystem(systemID, decimal.RequireFromString("40"))
	s.ChangeActivationStatusBasedOnAllocation()
	assert.False(t, s.IsActive())

	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("60"))
	s.ChangeActivationStatusBasedOnAllocation()
	assert.True(t, s.IsActive())

	require.True(t, s.RemoveServiceSystem(systemID))
	s.ChangeActivationStatusBasedOnAllocation()
	assert.False(t, s.IsActive())
}

func TestService_ChangeServiceSystemAllocation(t *testing.T) {
	s := buildService()
	systemID := uuid.New()
	s.AddServiceSystem(systemID, decimal.RequireFromString("25"))

	require.True(t, s.ChangeServiceSystemAllocation(systemID, decimal.RequireFromString("75")))
	ss := s.ServiceSystems()[0]
	assert.Equal(t, "75", ss.Allocation().String())
	assert.Equal(t, "750.00", ss.RunAmount().StringFixed(2))
	assert.Equal(t, "375.00", ss.ChgAmount().StringFixed(2))

	assert.False(t, s.ChangeServiceSystemAllocation(uuid.New(), decimal.RequireFromString("10")))
}

func TestService_Clone(t *testing.T) {
	s := buildService()
	s.AddServiceSystem(uuid.New(), decimal.RequireFromString("100"))
	s.ChangeActivationStatusBasedOnAllocation()
	require.NoError(t, s.Validate())

	newAgreementID := uuid.New()
	clone := s.Clone(newAgreementID)

	assert.NotEqual(t, s.ID(), clone.ID())
	assert.Equal(t, newAgreementID, clone.AgreementID())
	assert.Equal(t, s.Name(), clone.Name())
	assert.Equal(t, s.Amount().StringFixed(2), clone.Amount().StringFixed(2))
	assert.Equal(t, s.Status(), clone.Status())
	require.Len(t, clone.ServiceSystems(), 1)
	assert.Equal(t, clone.ID(), clone.ServiceSystems()[0].ServiceID())
	assert.Equal(t, s.ServiceSystems()[0].SystemID(), clone.ServiceSystems()[0].SystemID())
	assert.NoError(t, clone.Validate())

	// Detaching on the clone must not touch the source.
	require.True(t, clone.RemoveServiceSystem(clone.ServiceSystems()[0].SystemID()))
	assert.Len(t, s.ServiceSystems(), 1)
}

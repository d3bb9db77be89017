package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/application/testutil"
	"tally/internal/domain/agreement"
	"tally/internal/domain/plan"
	"tally/internal/shared/errors"
)

func mustUUID(t *testing.T, raw string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(raw)
	require.NoError(t, err)
	return id
}

func seedPlan(t *testing.T, repo *testutil.MockPlanRepository) *plan.Plan {
	t.Helper()
	p := plan.NewPlan("FY26-STD", "Standard rates", decimal.RequireFromString("1.0850"),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, p.Validate())
	repo.AddPlan(p)
	return p
}

func seedAgreementFor(t *testing.T, repo *testutil.MockAgreementRepository, providerPlanID, localPlanID string) *agreement.Agreement {
	t.Helper()
	a := agreement.NewAgreement(
		2026, "AGR-001",
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		mustUUID(t, providerPlanID), mustUUID(t, localPlanID),
		"Hosting", "Managed hosting", "owner@example.com",
		nil, nil,
	)
	require.NoError(t, a.Validate())
	repo.AddAgreement(a)
	return a
}

func TestCreatePlan_Success(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	uc := NewCreatePlanUseCase(repo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), CreatePlanCommand{
		Code:        "FY26-STD",
		Description: "Standard rates",
		Euro:        "1.0850",
		PlanDate:    "2026-01-01",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "FY26-STD", result.Code)
	assert.Equal(t, "2026-01-01", result.PlanDate)

	saved, err := repo.FindByID(context.Background(), mustUUID(t, result.PlanID))
	require.NoError(t, err)
	require.NotNil(t, saved)
}

func TestCreatePlan_InvalidEuro(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	uc := NewCreatePlanUseCase(repo, testutil.NewMockLogger())

	tests := []struct {
		name string
		euro string
	}{
		{name: "not a number", euro: "abc"},
		{name: "zero rate", euro: "0.00"},
		{name: "negative rate", euro: "-1.00"},
		{name: "too many decimals", euro: "1.12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreatePlanCommand{
				Code:        "FY26-STD",
				Description: "Standard rates",
				Euro:        tt.euro,
				PlanDate:    "2026-01-01",
			})
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUpdatePlan_NotFound(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	uc := NewUpdatePlanUseCase(repo, testutil.NewMockLogger())

	code := "FY26-ALT"
	_, err := uc.Execute(context.Background(), UpdatePlanCommand{
		PlanID: "6f1f39a1-9d5c-4f48-86a8-0a7e2f1d2b3c",
		Code:   &code,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdatePlan_PartialUpdate(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	p := seedPlan(t, repo)
	uc := NewUpdatePlanUseCase(repo, testutil.NewMockLogger())

	euro := "1.1000"
	result, err := uc.Execute(context.Background(), UpdatePlanCommand{
		PlanID: p.ID().String(),
		Euro:   &euro,
	})

	require.NoError(t, err)
	assert.Equal(t, "1.1", result.Euro)
	// Untouched fields survive.
	assert.Equal(t, "FY26-STD", result.Code)
}

func TestDeletePlan_RefusesWhileReferenced(t *testing.T) {
	planRepo := testutil.NewMockPlanRepository()
	agreementRepo := testutil.NewMockAgreementRepository()
	p := seedPlan(t, planRepo)
	seedAgreementFor(t, agreementRepo, p.ID().String(), p.ID().String())

	uc := NewDeletePlanUseCase(planRepo, agreementRepo, testutil.NewMockLogger())

	err := uc.Execute(context.Background(), p.ID().String())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	// The plan is still there.
	saved, findErr := planRepo.FindByID(context.Background(), p.ID())
	require.NoError(t, findErr)
	assert.NotNil(t, saved)
}

func TestDeletePlan_Success(t *testing.T) {
	planRepo := testutil.NewMockPlanRepository()
	agreementRepo := testutil.NewMockAgreementRepository()
	p := seedPlan(t, planRepo)

	uc := NewDeletePlanUseCase(planRepo, agreementRepo, testutil.NewMockLogger())

	err := uc.Execute(context.Background(), p.ID().String())

	require.NoError(t, err)
	saved, findErr := planRepo.FindByID(context.Background(), p.ID())
	require.NoError(t, findErr)
	assert.Nil(t, saved)
}

func TestGetPlan_NotFound(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	uc := NewGetPlanUseCase(repo, testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), "6f1f39a1-9d5c-4f48-86a8-0a7e2f1d2b3c")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListPlans_Empty(t *testing.T) {
	repo := testutil.NewMockPlanRepository()
	uc := NewListPlansUseCase(repo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

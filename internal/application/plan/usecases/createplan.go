package usecases

import (
	"context"
	"fmt"
	"time"

	"tally/internal/application/plan/dto"
	"tally/internal/domain/plan"
	"tally/internal/domain/shared/money"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// CreatePlanCommand carries the raw input for a new exchange-rate plan.
// Euro arrives as a decimal string and PlanDate as an ISO date.
type CreatePlanCommand struct {
	Code        string
	Description string
	Euro        string
	PlanDate    string
}

// CreatePlanUseCase handles the business logic for creating plans
type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

// NewCreatePlanUseCase creates a new create plan use case
func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute executes the create plan use case
func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanResponse, error) {
	uc.logger.Infow("executing create plan use case", "code", cmd.Code)

	euro, err := money.Parse(cmd.Euro)
	if err != nil {
		return nil, errors.NewValidationError("Plan euro rate must be a decimal value")
	}

	planDate, err := time.Parse(time.DateOnly, cmd.PlanDate)
	if err != nil {
		return nil, errors.NewValidationError("Plan date must be an ISO date (YYYY-MM-DD)")
	}

	p := plan.NewPlan(cmd.Code, cmd.Description, euro, planDate)
	if err := p.Validate(); err != nil {
		uc.logger.Warnw("plan validation failed", "error", err)
		return nil, err
	}

	if err := uc.planRepo.Insert(ctx, p); err != nil {
		uc.logger.Errorw("failed to insert plan", "error", err)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_id", p.ID(), "code", p.Code())
	return dto.FromPlan(p), nil
}

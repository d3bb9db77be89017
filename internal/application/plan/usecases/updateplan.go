package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tally/internal/application/plan/dto"
	"tally/internal/domain/plan"
	"tally/internal/domain/shared/money"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// UpdatePlanCommand carries the partial update for a plan. Nil fields are
// left untouched.
type UpdatePlanCommand struct {
	PlanID      string
	Code        *string
	Description *string
	Euro        *string
	PlanDate    *string
}

// UpdatePlanUseCase handles the business logic for updating plans
type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

// NewUpdatePlanUseCase creates a new update plan use case
func NewUpdatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute executes the update plan use case
func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanResponse, error) {
	uc.logger.Infow("executing update plan use case", "plan_id", cmd.PlanID)

	planID, err := uuid.Parse(cmd.PlanID)
	if err != nil {
		return nil, errors.NewValidationError("Plan id must be a valid UUID")
	}

	p, err := uc.planRepo.FindByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Plan not found")
	}

	if cmd.Code != nil {
		p.ChangeCode(*cmd.Code)
	}
	if cmd.Description != nil {
		p.ChangeDescription(*cmd.Description)
	}
	if cmd.Euro != nil {
		euro, err := money.Parse(*cmd.Euro)
		if err != nil {
			return nil, errors.NewValidationError("Plan euro rate must be a decimal value")
		}
		p.ChangeEuro(euro)
	}
	if cmd.PlanDate != nil {
		planDate, err := time.Parse(time.DateOnly, *cmd.PlanDate)
		if err != nil {
			return nil, errors.NewValidationError("Plan date must be an ISO date (YYYY-MM-DD)")
		}
		p.ChangePlanDate(planDate)
	}

	if err := p.Validate(); err != nil {
		uc.logger.Warnw("plan validation failed", "error", err, "plan_id", planID)
		return nil, err
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_id", planID)
	return dto.FromPlan(p), nil
}

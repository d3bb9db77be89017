package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/application/plan/dto"
	"tally/internal/domain/plan"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// GetPlanUseCase loads a single plan by ID.
type GetPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

// NewGetPlanUseCase creates a new get plan use case
func NewGetPlanUseCase(planRepo plan.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute executes the get plan use case
func (uc *GetPlanUseCase) Execute(ctx context.Context, rawPlanID string) (*dto.PlanResponse, error) {
	planID, err := uuid.Parse(rawPlanID)
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

	return dto.FromPlan(p), nil
}

package usecases

import (
	"context"
	"fmt"

	"tally/internal/application/plan/dto"
	"tally/internal/domain/plan"
	"tally/internal/shared/logger"
)

// ListPlansUseCase lists every exchange-rate plan.
type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

// NewListPlansUseCase creates a new list plans use case
func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute executes the list plans use case
func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanResponse, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.FromPlans(plans), nil
}

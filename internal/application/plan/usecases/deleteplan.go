package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/domain/agreement"
	"tally/internal/domain/plan"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// DeletePlanUseCase handles the business logic for deleting plans. Plans are
// shared references and are never cascade-deleted from agreements, so the
// delete refuses while any agreement still points at the plan.
type DeletePlanUseCase struct {
	planRepo      plan.Repository
	agreementRepo agreement.Repository
	logger        logger.Interface
}

// NewDeletePlanUseCase creates a new delete plan use case
func NewDeletePlanUseCase(
	planRepo plan.Repository,
	agreementRepo agreement.Repository,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo:      planRepo,
		agreementRepo: agreementRepo,
		logger:        logger,
	}
}

// Execute executes the delete plan use case
func (uc *DeletePlanUseCase) Execute(ctx context.Context, rawPlanID string) error {
	uc.logger.Infow("executing delete plan use case", "plan_id", rawPlanID)

	planID, err := uuid.Parse(rawPlanID)
	if err != nil {
		return errors.NewValidationError("Plan id must be a valid UUID")
	}

	p, err := uc.planRepo.FindByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("Plan not found")
	}

	count, err := uc.agreementRepo.CountByPlanID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to count agreements using plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to check plan usage: %w", err)
	}
	if count > 0 {
		return errors.NewConflictError(fmt.Sprintf("cannot delete plan: %d agreements reference this plan", count))
	}

	if err := uc.planRepo.Delete(ctx, planID); err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "plan_id", planID)
	return nil
}

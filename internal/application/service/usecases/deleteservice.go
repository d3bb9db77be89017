package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/domain/service"
	"tally/internal/domain/userlist"
	"tally/internal/shared/db"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// DeleteServiceUseCase removes a service together with its user list. Both
// deletes run in one transaction.
type DeleteServiceUseCase struct {
	serviceRepo  service.Repository
	userListRepo userlist.Repository
	txMgr        db.TxManager
	logger       logger.Interface
}

// NewDeleteServiceUseCase creates a new delete service use case
func NewDeleteServiceUseCase(
	serviceRepo service.Repository,
	userListRepo userlist.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{
		serviceRepo:  serviceRepo,
		userListRepo: userListRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

// Execute executes the delete service use case
func (uc *DeleteServiceUseCase) Execute(ctx context.Context, rawServiceID string) error {
	uc.logger.Infow("executing delete service use case", "service_id", rawServiceID)

	serviceID, err := uuid.Parse(rawServiceID)
	if err != nil {
		return errors.NewValidationError("Service id must be a valid UUID")
	}

	s, err := uc.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_id", serviceID)
		return fmt.Errorf("failed to load service: %w", err)
	}
	if s == nil {
		return errors.NewNotFoundError("Service not found")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.userListRepo.DeleteByServiceID(txCtx, serviceID); err != nil {
			return fmt.Errorf("failed to delete user list: %w", err)
		}
		if err := uc.serviceRepo.Delete(txCtx, serviceID); err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("delete service transaction failed", "error", err, "service_id", serviceID)
		return err
	}

	uc.logger.Infow("service deleted", "service_id", serviceID)
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/domain/agreement"
	"tally/internal/domain/service"
	"tally/internal/domain/userlist"
	"tally/internal/shared/db"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// DeleteAgreementUseCase deletes an agreement and cascades to its services
// and their user lists inside one transaction. Plans and systems are shared
// references and are never touched.
type DeleteAgreementUseCase struct {
	agreementRepo agreement.Repository
	serviceRepo   service.Repository
	userListRepo  userlist.Repository
	txMgr         db.TxManager
	logger        logger.Interface
}

// NewDeleteAgreementUseCase creates a new delete agreement use case
func NewDeleteAgreementUseCase(
	agreementRepo agreement.Repository,
	serviceRepo service.Repository,
	userListRepo userlist.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *DeleteAgreementUseCase {
	return &DeleteAgreementUseCase{
		agreementRepo: agreementRepo,
		serviceRepo:   serviceRepo,
		userListRepo:  userListRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

// Execute executes the delete agreement use case
func (uc *DeleteAgreementUseCase) Execute(ctx context.Context, rawAgreementID string) error {
	uc.logger.Infow("executing delete agreement use case", "agreement_id", rawAgreementID)

	agreementID, err := uuid.Parse(rawAgreementID)
	if err != nil {
		return errors.NewValidationError("Agreement id must be a valid UUID")
	}

	a, err := uc.agreementRepo.FindByID(ctx, agreementID)
	if err != nil {
		uc.logger.Errorw("failed to load agreement", "error", err, "agreement_id", agreementID)
		return fmt.Errorf("failed to load agreement: %w", err)
	}
	if a == nil {
		return errors.NewNotFoundError("Agreement not found")
	}

	// Children first to respect foreign keys: user lists, then services,
	// then the agreement row itself.
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		services, err := uc.serviceRepo.FindManyByAgreementID(txCtx, agreementID)
		if err != nil {
			return fmt.Errorf("failed to load services: %w", err)
		}

		for _, svc := range services {
			if _, err := uc.userListRepo.DeleteByServiceID(txCtx, svc.ID()); err != nil {
				return fmt.Errorf("failed to delete user list for service %s: %w", svc.ID(), err)
			}
			if err := uc.serviceRepo.Delete(txCtx, svc.ID()); err != nil {
				return fmt.Errorf("failed to delete service %s: %w", svc.ID(), err)
			}
		}

		if err := uc.agreementRepo.Delete(txCtx, agreementID); err != nil {
			return fmt.Errorf("failed to delete agreement: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("delete agreement transaction failed", "error", err, "agreement_id", agreementID)
		return err
	}

	uc.logger.Infow("agreement deleted", "agreement_id", agreementID)
	return nil
}

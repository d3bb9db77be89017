package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tally/internal/application/agreement/dto"
	"tally/internal/domain/agreement"
	"tally/internal/domain/service"
	"tally/internal/domain/userlist"
	"tally/internal/shared/db"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// CreateAgreementRevisionCommand carries the input for producing the next
// revision of an agreement lineage.
type CreateAgreementRevisionCommand struct {
	AgreementID    string
	RevisionDate   string
	ProviderPlanID string
	LocalPlanID    string
}

// CreateAgreementRevisionUseCase produces the successor revision of an
// agreement and replicates its whole service tree under it: every service is
// deep-cloned with its system allocations, and each service's user list is
// cloned along. The whole clone is one transaction; a failure anywhere rolls
// everything back.
type CreateAgreementRevisionUseCase struct {
	agreementRepo agreement.Repository
	serviceRepo   service.Repository
	userListRepo  userlist.Repository
	txMgr         db.TxManager
	logger        logger.Interface
}

// NewCreateAgreementRevisionUseCase creates a new create agreement revision use case
func NewCreateAgreementRevisionUseCase(
	agreementRepo agreement.Repository,
	serviceRepo service.Repository,
	userListRepo userlist.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *CreateAgreementRevisionUseCase {
	return &CreateAgreementRevisionUseCase{
		agreementRepo: agreementRepo,
		serviceRepo:   serviceRepo,
		userListRepo:  userListRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

// Execute executes the create agreement revision use case
func (uc *CreateAgreementRevisionUseCase) Execute(ctx context.Context, cmd CreateAgreementRevisionCommand) (*dto.AgreementResponse, error) {
	uc.logger.Infow("executing create agreement revision use case", "agreement_id", cmd.AgreementID)

	agreementID, err := uuid.Parse(cmd.AgreementID)
	if err != nil {
		return nil, errors.NewValidationError("Agreement id must be a valid UUID")
	}
	revisionDate, err := time.Parse(time.DateOnly, cmd.RevisionDate)
	if err != nil {
		return nil, errors.NewValidationError("Agreement revision date must be an ISO date (YYYY-MM-DD)")
	}
	providerPlanID, err := uuid.Parse(cmd.ProviderPlanID)
	if err != nil {
		return nil, errors.NewValidationError("Agreement provider plan id must be a valid UUID")
	}
	localPlanID, err := uuid.Parse(cmd.LocalPlanID)
	if err != nil {
		return nil, errors.NewValidationError("Agreement local plan id must be a valid UUID")
	}

	source, err := uc.agreementRepo.FindByID(ctx, agreementID)
	if err != nil {
		uc.logger.Errorw("failed to load agreement", "error", err, "agreement_id", agreementID)
		return nil, fmt.Errorf("failed to load agreement: %w", err)
	}
	if source == nil {
		return nil, errors.NewNotFoundError("Agreement not found")
	}

	successor := source.NewRevision(revisionDate, providerPlanID, localPlanID)
	if err := successor.Validate(); err != nil {
		uc.logger.Warnw("revision validation failed", "error", err, "agreement_id", agreementID)
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.agreementRepo.Insert(txCtx, successor); err != nil {
			return fmt.Errorf("failed to insert revision: %w", err)
		}

		services, err := uc.serviceRepo.FindManyByAgreementID(txCtx, source.ID())
		if err != nil {
			return fmt.Errorf("failed to load services: %w", err)
		}

		for _, svc := range services {
			clone := svc.Clone(successor.ID())
			if err := clone.Validate(); err != nil {
				return fmt.Errorf("cloned service %s is invalid: %w", svc.ID(), err)
			}
			if err := uc.serviceRepo.Insert(txCtx, clone); err != nil {
				return fmt.Errorf("failed to insert cloned service: %w", err)
			}

			list, err := uc.userListRepo.FindByServiceID(txCtx, svc.ID())
			if err != nil {
				return fmt.Errorf("failed to load user list for service %s: %w", svc.ID(), err)
			}
			if list == nil {
				continue
			}
			listClone := list.Clone(clone.ID())
			// An empty clone would violate the at-least-one-item rule; skip
			// the insert instead of aborting the revision.
			if listClone.UsersNumber() == 0 {
				continue
			}
			if err := uc.userListRepo.Save(txCtx, listClone); err != nil {
				return fmt.Errorf("failed to save cloned user list: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("create revision transaction failed", "error", err, "agreement_id", agreementID)
		return nil, err
	}

	uc.logger.Infow("agreement revision created",
		"source_agreement_id", source.ID(),
		"new_agreement_id", successor.ID(),
		"revision", successor.Revision())
	return dto.FromAgreement(successor), nil
}

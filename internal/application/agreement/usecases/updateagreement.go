package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tally/internal/application/agreement/dto"
	"tally/internal/domain/agreement"
	"tally/internal/domain/service"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// UpdateAgreementCommand carries the partial update for an agreement. Nil
// fields are left untouched. Comment and DocumentURL use a double pointer so
// callers can distinguish "leave alone" from "clear".
type UpdateAgreementCommand struct {
	AgreementID    string
	Year           *int
	Code           *string
	IsRevised      *bool
	RevisionDate   *string
	ProviderPlanID *string
	LocalPlanID    *string
	Name           *string
	Description    *string
	ContactEmail   *string
	Comment        **string
	DocumentURL    **string
}

// UpdateAgreementUseCase handles the business logic for updating agreements.
// Two cross-aggregate rules are enforced here: the code of a shared lineage
// cannot change, and the revised flag can only be raised once every service
// under the agreement has been approved or rejected.
type UpdateAgreementUseCase struct {
	agreementRepo agreement.Repository
	serviceRepo   service.Repository
	logger        logger.Interface
}

// NewUpdateAgreementUseCase creates a new update agreement use case
func NewUpdateAgreementUseCase(
	agreementRepo agreement.Repository,
	serviceRepo service.Repository,
	logger logger.Interface,
) *UpdateAgreementUseCase {
	return &UpdateAgreementUseCase{
		agreementRepo: agreementRepo,
		serviceRepo:   serviceRepo,
		logger:        logger,
	}
}

// Execute executes the update agreement use case
func (uc *UpdateAgreementUseCase) Execute(ctx context.Context, cmd UpdateAgreementCommand) (*dto.AgreementResponse, error) {
	uc.logger.Infow("executing update agreement use case", "agreement_id", cmd.AgreementID)

	agreementID, err := uuid.Parse(cmd.AgreementID)
	if err != nil {
		return nil, errors.NewValidationError("Agreement id must be a valid UUID")
	}

	a, err := uc.agreementRepo.FindByID(ctx, agreementID)
	if err != nil {
		uc.logger.Errorw("failed to load agreement", "error", err, "agreement_id", agreementID)
		return nil, fmt.Errorf("failed to load agreement: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Agreement not found")
	}

	// A lineage shared by several revisions keeps its identity: the code can
	// only change while this is the sole revision.
	if cmd.Code != nil && *cmd.Code != a.Code() {
		count, err := uc.agreementRepo.CountRevisions(ctx, a.Year(), a.Code())
		if err != nil {
			uc.logger.Errorw("failed to count revisions", "error", err, "agreement_id", agreementID)
			return nil, fmt.Errorf("failed to count revisions: %w", err)
		}
		if count > 1 {
			return nil, errors.NewValidationError(
				fmt.Sprintf("Agreement code cannot be changed: %d revisions found", count))
		}
	}

	// The revised flag may only be raised once every service under the
	// agreement is approved or rejected.
	if cmd.IsRevised != nil && *cmd.IsRevised && !a.IsRevised() {
		count, err := uc.serviceRepo.CountNotValidatedByAgreementID(ctx, agreementID)
		if err != nil {
			uc.logger.Errorw("failed to count non-validated services", "error", err, "agreement_id", agreementID)
			return nil, fmt.Errorf("failed to count non-validated services: %w", err)
		}
		if count > 0 {
			return nil, errors.NewValidationError(
				fmt.Sprintf("Agreement cannot be marked as revised: %d services not validated", count))
		}
	}

	if cmd.Year != nil {
		a.ChangeYear(*cmd.Year)
	}
	if cmd.Code != nil {
		a.ChangeCode(*cmd.Code)
	}
	if cmd.IsRevised != nil {
		a.SetRevised(*cmd.IsRevised)
	}
	if cmd.RevisionDate != nil {
		revisionDate, err := time.Parse(time.DateOnly, *cmd.RevisionDate)
		if err != nil {
			return nil, errors.NewValidationError("Agreement revision date must be an ISO date (YYYY-MM-DD)")
		}
		a.ChangeRevisionDate(revisionDate)
	}
	if cmd.ProviderPlanID != nil {
		providerPlanID, err := uuid.Parse(*cmd.ProviderPlanID)
		if err != nil {
			return nil, errors.NewValidationError("Agreement provider plan id must be a valid UUID")
		}
		a.ChangeProviderPlanID(providerPlanID)
	}
	if cmd.LocalPlanID != nil {
		localPlanID, err := uuid.Parse(*cmd.LocalPlanID)
		if err != nil {
			return nil, errors.NewValidationError("Agreement local plan id must be a valid UUID")
		}
		a.ChangeLocalPlanID(localPlanID)
	}
	if cmd.Name != nil {
		a.ChangeName(*cmd.Name)
	}
	if cmd.Description != nil {
		a.ChangeDescription(*cmd.Description)
	}
	if cmd.ContactEmail != nil {
		a.ChangeContactEmail(*cmd.ContactEmail)
	}
	if cmd.Comment != nil {
		a.ChangeComment(*cmd.Comment)
	}
	if cmd.DocumentURL != nil {
		a.ChangeDocumentURL(*cmd.DocumentURL)
	}

	if err := a.Validate(); err != nil {
		uc.logger.Warnw("agreement validation failed", "error", err, "agreement_id", agreementID)
		return nil, err
	}

	if err := uc.agreementRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update agreement", "error", err, "agreement_id", agreementID)
		return nil, fmt.Errorf("failed to update agreement: %w", err)
	}

	uc.logger.Infow("agreement updated", "agreement_id", agreementID)
	return dto.FromAgreement(a), nil
}

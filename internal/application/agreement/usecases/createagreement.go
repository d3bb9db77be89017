package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tally/internal/application/agreement/dto"
	"tally/internal/domain/agreement"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// CreateAgreementCommand carries the raw input for the first revision of a
// new agreement lineage.
type CreateAgreementCommand struct {
	Year           int
	Code           string
	RevisionDate   string
	ProviderPlanID string
	LocalPlanID    string
	Name           string
	Description    string
	ContactEmail   string
	Comment        *string
	DocumentURL    *string
}

// CreateAgreementUseCase handles the business logic for creating agreements
type CreateAgreementUseCase struct {
	agreementRepo agreement.Repository
	logger        logger.Interface
}

// NewCreateAgreementUseCase creates a new create agreement use case
func NewCreateAgreementUseCase(agreementRepo agreement.Repository, logger logger.Interface) *CreateAgreementUseCase {
	return &CreateAgreementUseCase{
		agreementRepo: agreementRepo,
		logger:        logger,
	}
}

// Execute executes the create agreement use case
func (uc *CreateAgreementUseCase) Execute(ctx context.Context, cmd CreateAgreementCommand) (*dto.AgreementResponse, error) {
	uc.logger.Infow("executing create agreement use case", "year", cmd.Year, "code", cmd.Code)

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

	a := agreement.NewAgreement(
		cmd.Year,
		cmd.Code,
		revisionDate,
		providerPlanID,
		localPlanID,
		cmd.Name,
		cmd.Description,
		cmd.ContactEmail,
		cmd.Comment,
		cmd.DocumentURL,
	)
	if err := a.Validate(); err != nil {
		uc.logger.Warnw("agreement validation failed", "error", err)
		return nil, err
	}

	if err := uc.agreementRepo.Insert(ctx, a); err != nil {
		uc.logger.Errorw("failed to insert agreement", "error", err)
		return nil, fmt.Errorf("failed to create agreement: %w", err)
	}

	uc.logger.Infow("agreement created", "agreement_id", a.ID(), "year", a.Year(), "code", a.Code())
	return dto.FromAgreement(a), nil
}

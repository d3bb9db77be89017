package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/application/agreement/dto"
	"tally/internal/domain/agreement"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// GetAgreementUseCase loads a single agreement revision by ID.
type GetAgreementUseCase struct {
	agreementRepo agreement.Repository
	logger        logger.Interface
}

// NewGetAgreementUseCase creates a new get agreement use case
func NewGetAgreementUseCase(agreementRepo agreement.Repository, logger logger.Interface) *GetAgreementUseCase {
	return &GetAgreementUseCase{
		agreementRepo: agreementRepo,
		logger:        logger,
	}
}

// Execute executes the get agreement use case
func (uc *GetAgreementUseCase) Execute(ctx context.Context, rawAgreementID string) (*dto.AgreementResponse, error) {
	agreementID, err := uuid.Parse(rawAgreementID)
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

	return dto.FromAgreement(a), nil
}

package usecases

import (
	"context"
	"fmt"

	"tally/internal/application/agreement/dto"
	"tally/internal/domain/agreement"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// ListAgreementsUseCase lists agreements, optionally narrowing to one
// year+code lineage.
type ListAgreementsUseCase struct {
	agreementRepo agreement.Repository
	logger        logger.Interface
}

// NewListAgreementsUseCase creates a new list agreements use case
func NewListAgreementsUseCase(agreementRepo agreement.Repository, logger logger.Interface) *ListAgreementsUseCase {
	return &ListAgreementsUseCase{
		agreementRepo: agreementRepo,
		logger:        logger,
	}
}

// ListAgreementsQuery narrows the listing. Zero values list everything.
type ListAgreementsQuery struct {
	Year int
	Code string
}

// Execute executes the list agreements use case
func (uc *ListAgreementsUseCase) Execute(ctx context.Context, query ListAgreementsQuery) ([]*dto.AgreementResponse, error) {
	if query.Year != 0 || query.Code != "" {
		if query.Year == 0 || query.Code == "" {
			return nil, errors.NewValidationError("Year and code must be provided together to list a lineage")
		}
		lineage, err := uc.agreementRepo.ListRevisions(ctx, query.Year, query.Code)
		if err != nil {
			uc.logger.Errorw("failed to list revisions", "error", err, "year", query.Year, "code", query.Code)
			return nil, fmt.Errorf("failed to list revisions: %w", err)
		}
		return dto.FromAgreements(lineage), nil
	}

	agreements, err := uc.agreementRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list agreements", "error", err)
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}
	return dto.FromAgreements(agreements), nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/application/service/dto"
	"tally/internal/domain/service"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// ListServicesUseCase lists the services attached to one agreement revision.
type ListServicesUseCase struct {
	serviceRepo service.Repository
	logger      logger.Interface
}

// NewListServicesUseCase creates a new list services use case
func NewListServicesUseCase(serviceRepo service.Repository, logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute executes the list services use case
func (uc *ListServicesUseCase) Execute(ctx context.Context, rawAgreementID string) ([]*dto.ServiceResponse, error) {
	agreementID, err := uuid.Parse(rawAgreementID)
	if err != nil {
		return nil, errors.NewValidationError("Agreement id must be a valid UUID")
	}

	services, err := uc.serviceRepo.FindManyByAgreementID(ctx, agreementID)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err, "agreement_id", agreementID)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return dto.FromServices(services), nil
}

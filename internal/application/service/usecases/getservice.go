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

// GetServiceUseCase loads a single service with its system allocations.
type GetServiceUseCase struct {
	serviceRepo service.Repository
	logger      logger.Interface
}

// NewGetServiceUseCase creates a new get service use case
func NewGetServiceUseCase(serviceRepo service.Repository, logger logger.Interface) *GetServiceUseCase {
	return &GetServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute executes the get service use case
func (uc *GetServiceUseCase) Execute(ctx context.Context, rawServiceID string) (*dto.ServiceResponse, error) {
	serviceID, err := uuid.Parse(rawServiceID)
	if err != nil {
		return nil, errors.NewValidationError("Service id must be a valid UUID")
	}

	s, err := uc.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Service not found")
	}

	return dto.FromService(s), nil
}

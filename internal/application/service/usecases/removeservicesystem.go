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

// RemoveServiceSystemCommand detaches one system allocation from a service.
type RemoveServiceSystemCommand struct {
	ServiceID string
	SystemID  string
}

// RemoveServiceSystemUseCase handles the business logic for detaching
// system allocations
type RemoveServiceSystemUseCase struct {
	serviceRepo service.Repository
	logger      logger.Interface
}

// NewRemoveServiceSystemUseCase creates a new remove service system use case
func NewRemoveServiceSystemUseCase(serviceRepo service.Repository, logger logger.Interface) *RemoveServiceSystemUseCase {
	return &RemoveServiceSystemUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute executes the remove service system use case
func (uc *RemoveServiceSystemUseCase) Execute(ctx context.Context, cmd RemoveServiceSystemCommand) (*dto.ServiceResponse, error) {
	uc.logger.Infow("executing remove service system use case", "service_id", cmd.ServiceID, "system_id", cmd.SystemID)

	serviceID, err := uuid.Parse(cmd.ServiceID)
	if err != nil {
		return nil, errors.NewValidationError("Service id must be a valid UUID")
	}
	systemID, err := uuid.Parse(cmd.SystemID)
	if err != nil {
		return nil, errors.NewValidationError("System id must be a valid UUID")
	}

	s, err := uc.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Service not found")
	}

	if !s.RemoveServiceSystem(systemID) {
		return nil, errors.NewNotFoundError("System allocation not found on service")
	}
	s.ChangeActivationStatusBasedOnAllocation()

	if err := s.Validate(); err != nil {
		uc.logger.Warnw("service validation failed", "error", err, "service_id", serviceID)
		return nil, err
	}

	if err := uc.serviceRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to remove service system: %w", err)
	}

	uc.logger.Infow("service system removed", "service_id", serviceID, "system_id", systemID)
	return dto.FromService(s), nil
}

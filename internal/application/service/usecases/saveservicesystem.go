package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/application/service/dto"
	"tally/internal/domain/service"
	"tally/internal/domain/shared/money"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// SaveServiceSystemCommand attaches or re-weights one system allocation.
type SaveServiceSystemCommand struct {
	ServiceID  string
	SystemID   string
	Allocation string
}

// SaveServiceSystemUseCase upserts a system allocation slice on a service:
// an attached system gets its percentage replaced, a new one is appended.
// The derived activation flag is recomputed either way.
type SaveServiceSystemUseCase struct {
	serviceRepo service.Repository
	logger      logger.Interface
}

// NewSaveServiceSystemUseCase creates a new save service system use case
func NewSaveServiceSystemUseCase(serviceRepo service.Repository, logger logger.Interface) *SaveServiceSystemUseCase {
	return &SaveServiceSystemUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute executes the save service system use case
func (uc *SaveServiceSystemUseCase) Execute(ctx context.Context, cmd SaveServiceSystemCommand) (*dto.ServiceResponse, error) {
	uc.logger.Infow("executing save service system use case", "service_id", cmd.ServiceID, "system_id", cmd.SystemID)

	serviceID, err := uuid.Parse(cmd.ServiceID)
	if err != nil {
		return nil, errors.NewValidationError("Service id must be a valid UUID")
	}
	systemID, err := uuid.Parse(cmd.SystemID)
	if err != nil {
		return nil, errors.NewValidationError("System id must be a valid UUID")
	}
	allocation, err := money.Parse(cmd.Allocation)
	if err != nil {
		return nil, errors.NewValidationError("System allocation must be a decimal value")
	}

	s, err := uc.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Service not found")
	}

	if !s.ChangeServiceSystemAllocation(systemID, allocation) {
		s.AddServiceSystem(systemID, allocation)
	}
	s.ChangeActivationStatusBasedOnAllocation()

	if err := s.Validate(); err != nil {
		uc.logger.Warnw("service validation failed", "error", err, "service_id", serviceID)
		return nil, err
	}

	if err := uc.serviceRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to save service system: %w", err)
	}

	uc.logger.Infow("service system saved",
		"service_id", serviceID,
		"system_id", systemID,
		"total_allocation", s.TotalAllocation().String())
	return dto.FromService(s), nil
}

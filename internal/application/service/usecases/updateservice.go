package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tally/internal/application/service/dto"
	"tally/internal/domain/service"
	"tally/internal/domain/shared/money"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// UpdateServiceCommand carries a partial update. Nil pointers leave the field
// alone; DocumentURL uses a double pointer so that callers can distinguish
// "leave alone" (nil) from "clear" (*nil).
type UpdateServiceCommand struct {
	ServiceID          string
	Name               *string
	Description        *string
	RunAmount          *string
	ChgAmount          *string
	Currency           *string
	ResponsibleEmail   *string
	ProviderAllocation *string
	LocalAllocation    *string
	Status             *string
	ValidatorEmail     *string
	DocumentURL        **string
}

// UpdateServiceUseCase handles the business logic for updating services
type UpdateServiceUseCase struct {
	serviceRepo service.Repository
	logger      logger.Interface
}

// NewUpdateServiceUseCase creates a new update service use case
func NewUpdateServiceUseCase(serviceRepo service.Repository, logger logger.Interface) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute executes the update service use case
func (uc *UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) (*dto.ServiceResponse, error) {
	uc.logger.Infow("executing update service use case", "service_id", cmd.ServiceID)

	serviceID, err := uuid.Parse(cmd.ServiceID)
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

	if cmd.Name != nil {
		s.ChangeName(*cmd.Name)
	}
	if cmd.Description != nil {
		s.ChangeDescription(*cmd.Description)
	}
	if cmd.RunAmount != nil || cmd.ChgAmount != nil {
		runAmount := s.RunAmount()
		chgAmount := s.ChgAmount()
		if cmd.RunAmount != nil {
			if runAmount, err = parseAmount(*cmd.RunAmount, "run"); err != nil {
				return nil, err
			}
		}
		if cmd.ChgAmount != nil {
			if chgAmount, err = parseAmount(*cmd.ChgAmount, "change"); err != nil {
				return nil, err
			}
		}
		s.ChangeAmounts(runAmount, chgAmount)
	}
	if cmd.Currency != nil {
		s.ChangeCurrency(service.Currency(*cmd.Currency))
	}
	if cmd.ResponsibleEmail != nil {
		s.ChangeResponsibleEmail(*cmd.ResponsibleEmail)
	}
	if cmd.ProviderAllocation != nil {
		s.ChangeProviderAllocation(*cmd.ProviderAllocation)
	}
	if cmd.LocalAllocation != nil {
		s.ChangeLocalAllocation(*cmd.LocalAllocation)
	}
	if cmd.Status != nil {
		s.ChangeStatus(service.Status(*cmd.Status))
	}
	if cmd.ValidatorEmail != nil {
		s.ChangeValidatorEmail(*cmd.ValidatorEmail)
	}
	if cmd.DocumentURL != nil {
		s.ChangeDocumentURL(*cmd.DocumentURL)
	}

	if err := s.Validate(); err != nil {
		uc.logger.Warnw("service validation failed", "error", err, "service_id", serviceID)
		return nil, err
	}

	if err := uc.serviceRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	uc.logger.Infow("service updated", "service_id", serviceID)
	return dto.FromService(s), nil
}

func parseAmount(raw, kind string) (decimal.Decimal, error) {
	d, err := money.Parse(raw)
	if err != nil {
		return decimal.Zero, errors.NewValidationError(fmt.Sprintf("Service %s amount must be a decimal value", kind))
	}
	return d, nil
}

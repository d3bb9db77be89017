package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/application/service/dto"
	"tally/internal/domain/agreement"
	"tally/internal/domain/service"
	"tally/internal/domain/shared/money"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// CreateServiceCommand carries the raw input for a new billable service.
// Amounts arrive as decimal strings.
type CreateServiceCommand struct {
	AgreementID        string
	Name               string
	Description        string
	RunAmount          string
	ChgAmount          string
	Currency           string
	ResponsibleEmail   string
	ProviderAllocation string
	LocalAllocation    string
	DocumentURL        *string
}

// CreateServiceUseCase handles the business logic for creating services
type CreateServiceUseCase struct {
	serviceRepo   service.Repository
	agreementRepo agreement.Repository
	logger        logger.Interface
}

// NewCreateServiceUseCase creates a new create service use case
func NewCreateServiceUseCase(
	serviceRepo service.Repository,
	agreementRepo agreement.Repository,
	logger logger.Interface,
) *CreateServiceUseCase {
	return &CreateServiceUseCase{
		serviceRepo:   serviceRepo,
		agreementRepo: agreementRepo,
		logger:        logger,
	}
}

// Execute executes the create service use case
func (uc *CreateServiceUseCase) Execute(ctx context.Context, cmd CreateServiceCommand) (*dto.ServiceResponse, error) {
	uc.logger.Infow("executing create service use case", "agreement_id", cmd.AgreementID, "name", cmd.Name)

	agreementID, err := uuid.Parse(cmd.AgreementID)
	if err != nil {
		return nil, errors.NewValidationError("Agreement id must be a valid UUID")
	}

	parent, err := uc.agreementRepo.FindByID(ctx, agreementID)
	if err != nil {
		uc.logger.Errorw("failed to load agreement", "error", err, "agreement_id", agreementID)
		return nil, fmt.Errorf("failed to load agreement: %w", err)
	}
	if parent == nil {
		return nil, errors.NewNotFoundError("Agreement not found")
	}

	runAmount, err := money.Parse(cmd.RunAmount)
	if err != nil {
		return nil, errors.NewValidationError("Service run amount must be a decimal value")
	}
	chgAmount, err := money.Parse(cmd.ChgAmount)
	if err != nil {
		return nil, errors.NewValidationError("Service change amount must be a decimal value")
	}

	s := service.NewService(
		agreementID,
		cmd.Name,
		cmd.Description,
		runAmount,
		chgAmount,
		service.Currency(cmd.Currency),
		cmd.ResponsibleEmail,
		cmd.ProviderAllocation,
		cmd.LocalAllocation,
		cmd.DocumentURL,
	)
	if err := s.Validate(); err != nil {
		uc.logger.Warnw("service validation failed", "error", err)
		return nil, err
	}

	if err := uc.serviceRepo.Insert(ctx, s); err != nil {
		uc.logger.Errorw("failed to insert service", "error", err)
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	uc.logger.Infow("service created", "service_id", s.ID(), "agreement_id", agreementID)
	return dto.FromService(s), nil
}

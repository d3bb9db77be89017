package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tally/internal/domain/service"
	"tally/internal/infrastructure/persistence/models"
	"tally/internal/shared/db"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// ServiceRepositoryImpl implements the service.Repository interface. A service
// row and its system slices are written together; slices are replaced
// wholesale on update.
type ServiceRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository(database *gorm.DB, logger logger.Interface) service.Repository {
	return &ServiceRepositoryImpl{
		db:     database,
		logger: logger,
	}
}

// Insert creates a new service with its system slices
func (r *ServiceRepositoryImpl) Insert(ctx context.Context, s *service.Service) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := serviceToModel(s)
		if err := tx.Create(model).Error; err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("service already exists")
			}
			r.logger.Errorw("failed to insert service", "service_id", model.ID, "error", err)
			return fmt.Errorf("failed to insert service: %w", err)
		}

		if err := r.insertSystems(tx, s); err != nil {
			return err
		}
		return nil
	})
}

// Update updates a service and replaces its system slices
func (r *ServiceRepositoryImpl) Update(ctx context.Context, s *service.Service) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := serviceToModel(s)
		result := tx.Model(&models.ServiceModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
			"agreement_id":        model.AgreementID,
			"name":                model.Name,
			"description":         model.Description,
			"run_amount":          model.RunAmount,
			"chg_amount":          model.ChgAmount,
			"amount":              model.Amount,
			"currency":            model.Currency,
			"responsible_email":   model.ResponsibleEmail,
			"is_active":           model.IsActive,
			"provider_allocation": model.ProviderAllocation,
			"local_allocation":    model.LocalAllocation,
			"status":              model.Status,
			"validator_email":     model.ValidatorEmail,
			"document_url":        model.DocumentURL,
		})
		if result.Error != nil {
			r.logger.Errorw("failed to update service", "service_id", model.ID, "error", result.Error)
			return fmt.Errorf("failed to update service: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("service not found")
		}

		if err := tx.Where("service_id = ?", model.ID).Delete(&models.ServiceSystemModel{}).Error; err != nil {
			r.logger.Errorw("failed to clear service systems", "service_id", model.ID, "error", err)
			return fmt.Errorf("failed to clear service systems: %w", err)
		}
		if err := r.insertSystems(tx, s); err != nil {
			return err
		}
		return nil
	})
}

// Delete deletes a service and its system slices by ID
func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id.String()).Delete(&models.ServiceSystemModel{}).Error; err != nil {
			r.logger.Errorw("failed to delete service systems", "service_id", id, "error", err)
			return fmt.Errorf("failed to delete service systems: %w", err)
		}

		result := tx.Where("id = ?", id.String()).Delete(&models.ServiceModel{})
		if result.Error != nil {
			r.logger.Errorw("failed to delete service", "service_id", id, "error", result.Error)
			return fmt.Errorf("failed to delete service: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("service not found")
		}
		return nil
	})
}

// FindByID retrieves a service with its system slices, returning nil when absent
func (r *ServiceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ServiceModel
	if err := tx.Where("id = ?", id.String()).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find service", "service_id", id, "error", err)
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	systems, err := r.loadSystems(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return serviceToDomain(&model, systems)
}

// FindManyByAgreementID retrieves all services under an agreement
func (r *ServiceRepositoryImpl) FindManyByAgreementID(ctx context.Context, agreementID uuid.UUID) ([]*service.Service, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var serviceModels []models.ServiceModel
	if err := tx.Where("agreement_id = ?", agreementID.String()).
		Order("name ASC").
		Find(&serviceModels).Error; err != nil {
		r.logger.Errorw("failed to list services", "agreement_id", agreementID, "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]*service.Service, len(serviceModels))
	for i := range serviceModels {
		systems, err := r.loadSystems(tx, serviceModels[i].ID)
		if err != nil {
			return nil, err
		}
		s, err := serviceToDomain(&serviceModels[i], systems)
		if err != nil {
			return nil, err
		}
		services[i] = s
	}

	return services, nil
}

// CountNotValidatedByAgreementID counts services whose status is neither
// approved nor rejected
func (r *ServiceRepositoryImpl) CountNotValidatedByAgreementID(ctx context.Context, agreementID uuid.UUID) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ServiceModel{}).
		Where("agreement_id = ? AND status NOT IN ?", agreementID.String(),
			[]string{string(service.StatusApproved), string(service.StatusRejected)}).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count non-validated services", "agreement_id", agreementID, "error", err)
		return 0, fmt.Errorf("failed to count non-validated services: %w", err)
	}

	return count, nil
}

func (r *ServiceRepositoryImpl) insertSystems(tx *gorm.DB, s *service.Service) error {
	for _, ss := range s.ServiceSystems() {
		model := &models.ServiceSystemModel{
			ServiceID:  ss.ServiceID().String(),
			SystemID:   ss.SystemID().String(),
			Allocation: ss.Allocation(),
			RunAmount:  ss.RunAmount(),
			ChgAmount:  ss.ChgAmount(),
			Amount:     ss.Amount(),
			Currency:   string(ss.Currency()),
		}
		if err := tx.Create(model).Error; err != nil {
			r.logger.Errorw("failed to insert service system",
				"service_id", model.ServiceID,
				"system_id", model.SystemID,
				"error", err)
			return fmt.Errorf("failed to insert service system: %w", err)
		}
	}
	return nil
}

func (r *ServiceRepositoryImpl) loadSystems(tx *gorm.DB, serviceID string) ([]models.ServiceSystemModel, error) {
	var systems []models.ServiceSystemModel
	if err := tx.Where("service_id = ?", serviceID).
		Order("created_at ASC").
		Find(&systems).Error; err != nil {
		r.logger.Errorw("failed to load service systems", "service_id", serviceID, "error", err)
		return nil, fmt.Errorf("failed to load service systems: %w", err)
	}
	return systems, nil
}

func serviceToModel(s *service.Service) *models.ServiceModel {
	return &models.ServiceModel{
		ID:                 s.ID().String(),
		AgreementID:        s.AgreementID().String(),
		Name:               s.Name(),
		Description:        s.Description(),
		RunAmount:          s.RunAmount(),
		ChgAmount:          s.ChgAmount(),
		Amount:             s.Amount(),
		Currency:           string(s.Currency()),
		ResponsibleEmail:   s.ResponsibleEmail(),
		IsActive:           s.IsActive(),
		ProviderAllocation: s.ProviderAllocation(),
		LocalAllocation:    s.LocalAllocation(),
		Status:             string(s.Status()),
		ValidatorEmail:     s.ValidatorEmail(),
		DocumentURL:        s.DocumentURL(),
	}
}

func serviceToDomain(model *models.ServiceModel, systemModels []models.ServiceSystemModel) (*service.Service, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id %q: %w", model.ID, err)
	}
	agreementID, err := uuid.Parse(model.AgreementID)
	if err != nil {
		return nil, fmt.Errorf("invalid agreement id %q: %w", model.AgreementID, err)
	}

	systems := make([]*service.ServiceSystem, len(systemModels))
	for i := range systemModels {
		sm := &systemModels[i]
		systemID, err := uuid.Parse(sm.SystemID)
		if err != nil {
			return nil, fmt.Errorf("invalid system id %q: %w", sm.SystemID, err)
		}
		systems[i] = service.ReconstructServiceSystem(
			id, systemID,
			sm.Allocation, sm.RunAmount, sm.ChgAmount, sm.Amount,
			service.Currency(sm.Currency),
		)
	}

	return service.ReconstructService(
		id, agreementID,
		model.Name, model.Description,
		model.RunAmount, model.ChgAmount, model.Amount,
		service.Currency(model.Currency),
		model.ResponsibleEmail,
		model.IsActive,
		model.ProviderAllocation, model.LocalAllocation,
		service.Status(model.Status),
		model.ValidatorEmail,
		model.DocumentURL,
		systems,
	), nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tally/internal/domain/agreement"
	"tally/internal/infrastructure/persistence/models"
	"tally/internal/shared/db"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// AgreementRepositoryImpl implements the agreement.Repository interface
type AgreementRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAgreementRepository creates a new agreement repository instance
func NewAgreementRepository(database *gorm.DB, logger logger.Interface) agreement.Repository {
	return &AgreementRepositoryImpl{
		db:     database,
		logger: logger,
	}
}

// Insert creates a new agreement row
func (r *AgreementRepositoryImpl) Insert(ctx context.Context, a *agreement.Agreement) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := agreementToModel(a)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(
				fmt.Sprintf("agreement revision %d already exists for %d/%s", a.Revision(), a.Year(), a.Code()))
		}
		r.logger.Errorw("failed to insert agreement", "agreement_id", model.ID, "error", err)
		return fmt.Errorf("failed to insert agreement: %w", err)
	}

	return nil
}

// Update updates an existing agreement row
func (r *AgreementRepositoryImpl) Update(ctx context.Context, a *agreement.Agreement) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := agreementToModel(a)
	result := tx.Model(&models.AgreementModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"year":             model.Year,
		"code":             model.Code,
		"revision":         model.Revision,
		"is_revised":       model.IsRevised,
		"revision_date":    model.RevisionDate,
		"provider_plan_id": model.ProviderPlanID,
		"local_plan_id":    model.LocalPlanID,
		"name":             model.Name,
		"description":      model.Description,
		"contact_email":    model.ContactEmail,
		"comment":          model.Comment,
		"document_url":     model.DocumentURL,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update agreement", "agreement_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update agreement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("agreement not found")
	}

	return nil
}

// Delete deletes an agreement by ID
func (r *AgreementRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id = ?", id.String()).Delete(&models.AgreementModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete agreement", "agreement_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete agreement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("agreement not found")
	}

	return nil
}

// FindByID retrieves an agreement by ID, returning nil when absent
func (r *AgreementRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*agreement.Agreement, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.AgreementModel
	if err := tx.Where("id = ?", id.String()).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find agreement", "agreement_id", id, "error", err)
		return nil, fmt.Errorf("failed to find agreement: %w", err)
	}

	return agreementToDomain(&model)
}

// CountRevisions counts the rows sharing a year+code lineage
func (r *AgreementRepositoryImpl) CountRevisions(ctx context.Context, year int, code string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.AgreementModel{}).
		Where("year = ? AND code = ?", year, code).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count revisions", "year", year, "code", code, "error", err)
		return 0, fmt.Errorf("failed to count revisions: %w", err)
	}

	return count, nil
}

// ListRevisions retrieves a lineage ordered by revision ascending
func (r *AgreementRepositoryImpl) ListRevisions(ctx context.Context, year int, code string) ([]*agreement.Agreement, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var agreementModels []models.AgreementModel
	if err := tx.Where("year = ? AND code = ?", year, code).
		Order("revision ASC").
		Find(&agreementModels).Error; err != nil {
		r.logger.Errorw("failed to list revisions", "year", year, "code", code, "error", err)
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}

	return agreementsToDomain(agreementModels)
}

// CountByPlanID counts agreements referencing a plan as provider or local
func (r *AgreementRepositoryImpl) CountByPlanID(ctx context.Context, planID uuid.UUID) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.AgreementModel{}).
		Where("provider_plan_id = ? OR local_plan_id = ?", planID.String(), planID.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count agreements by plan", "plan_id", planID, "error", err)
		return 0, fmt.Errorf("failed to count agreements by plan: %w", err)
	}

	return count, nil
}

// List retrieves all agreements ordered by year, code, revision
func (r *AgreementRepositoryImpl) List(ctx context.Context) ([]*agreement.Agreement, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var agreementModels []models.AgreementModel
	if err := tx.Order("year ASC, code ASC, revision ASC").Find(&agreementModels).Error; err != nil {
		r.logger.Errorw("failed to list agreements", "error", err)
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}

	return agreementsToDomain(agreementModels)
}

func agreementToModel(a *agreement.Agreement) *models.AgreementModel {
	return &models.AgreementModel{
		ID:             a.ID().String(),
		Year:           a.Year(),
		Code:           a.Code(),
		Revision:       a.Revision(),
		IsRevised:      a.IsRevised(),
		RevisionDate:   a.RevisionDate(),
		ProviderPlanID: a.ProviderPlanID().String(),
		LocalPlanID:    a.LocalPlanID().String(),
		Name:           a.Name(),
		Description:    a.Description(),
		ContactEmail:   a.ContactEmail(),
		Comment:        a.Comment(),
		DocumentURL:    a.DocumentURL(),
	}
}

func agreementToDomain(model *models.AgreementModel) (*agreement.Agreement, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid agreement id %q: %w", model.ID, err)
	}
	providerPlanID, err := uuid.Parse(model.ProviderPlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider plan id %q: %w", model.ProviderPlanID, err)
	}
	localPlanID, err := uuid.Parse(model.LocalPlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid local plan id %q: %w", model.LocalPlanID, err)
	}

	return agreement.ReconstructAgreement(
		id,
		model.Year,
		model.Code,
		model.Revision,
		model.IsRevised,
		model.RevisionDate,
		providerPlanID, localPlanID,
		model.Name, model.Description, model.ContactEmail,
		model.Comment, model.DocumentURL,
	), nil
}

func agreementsToDomain(agreementModels []models.AgreementModel) ([]*agreement.Agreement, error) {
	agreements := make([]*agreement.Agreement, len(agreementModels))
	for i := range agreementModels {
		a, err := agreementToDomain(&agreementModels[i])
		if err != nil {
			return nil, err
		}
		agreements[i] = a
	}
	return agreements, nil
}

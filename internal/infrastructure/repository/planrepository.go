package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tally/internal/domain/plan"
	"tally/internal/infrastructure/persistence/models"
	"tally/internal/shared/db"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// PlanRepositoryImpl implements the plan.Repository interface
type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(database *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     database,
		logger: logger,
	}
}

// Insert creates a new plan row
func (r *PlanRepositoryImpl) Insert(ctx context.Context, p *plan.Plan) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := planToModel(p)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("plan already exists")
		}
		r.logger.Errorw("failed to insert plan", "plan_id", model.ID, "error", err)
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	return nil
}

// Update updates an existing plan row
func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := planToModel(p)
	result := tx.Model(&models.PlanModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"code":        model.Code,
		"description": model.Description,
		"euro":        model.Euro,
		"plan_date":   model.PlanDate,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "plan_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("plan not found")
	}

	return nil
}

// Delete deletes a plan by ID
func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id = ?", id.String()).Delete(&models.PlanModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "plan_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("plan not found")
	}

	return nil
}

// FindByID retrieves a plan by ID, returning nil when absent
func (r *PlanRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PlanModel
	if err := tx.Where("id = ?", id.String()).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find plan", "plan_id", id, "error", err)
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	return planToDomain(&model)
}

// List retrieves all plans ordered by plan date descending
func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*plan.Plan, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var planModels []models.PlanModel
	if err := tx.Order("plan_date DESC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]*plan.Plan, len(planModels))
	for i := range planModels {
		p, err := planToDomain(&planModels[i])
		if err != nil {
			return nil, err
		}
		plans[i] = p
	}

	return plans, nil
}

func planToModel(p *plan.Plan) *models.PlanModel {
	return &models.PlanModel{
		ID:          p.ID().String(),
		Code:        p.Code(),
		Description: p.Description(),
		Euro:        p.Euro(),
		PlanDate:    p.PlanDate(),
	}
}

func planToDomain(model *models.PlanModel) (*plan.Plan, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid plan id %q: %w", model.ID, err)
	}
	return plan.ReconstructPlan(id, model.Code, model.Description, model.Euro, model.PlanDate), nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tally/internal/domain/userlist"
	"tally/internal/infrastructure/persistence/models"
	"tally/internal/shared/db"
	"tally/internal/shared/logger"
)

// UserListRepositoryImpl implements the userlist.Repository interface.
// Rosters are replaced wholesale: Save drops any existing roster for the
// service before writing the new one.
type UserListRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserListRepository creates a new user list repository instance
func NewUserListRepository(database *gorm.DB, logger logger.Interface) userlist.Repository {
	return &UserListRepositoryImpl{
		db:     database,
		logger: logger,
	}
}

// Save persists the roster, replacing any existing one for the service
func (r *UserListRepositoryImpl) Save(ctx context.Context, ul *userlist.UserList) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := r.deleteByServiceID(tx, ul.ServiceID().String()); err != nil {
			return err
		}

		listModel := &models.UserListModel{
			ID:        ul.ID().String(),
			ServiceID: ul.ServiceID().String(),
		}
		if err := tx.Create(listModel).Error; err != nil {
			r.logger.Errorw("failed to insert user list", "user_list_id", listModel.ID, "error", err)
			return fmt.Errorf("failed to insert user list: %w", err)
		}

		for _, item := range ul.Items() {
			itemModel := &models.UserListItemModel{
				ID:         item.ID().String(),
				UserListID: listModel.ID,
				Name:       item.Name(),
				Email:      item.Email(),
				CorpUserID: item.CorpUserID(),
				Area:       item.Area(),
				CostCenter: item.CostCenter(),
			}
			if err := tx.Create(itemModel).Error; err != nil {
				r.logger.Errorw("failed to insert user list item",
					"user_list_id", listModel.ID,
					"item_id", itemModel.ID,
					"error", err)
				return fmt.Errorf("failed to insert user list item: %w", err)
			}
		}
		return nil
	})
}

// DeleteByServiceID deletes the roster attached to a service. It returns the
// deleted list's ID, or uuid.Nil when no roster existed.
func (r *UserListRepositoryImpl) DeleteByServiceID(ctx context.Context, serviceID uuid.UUID) (uuid.UUID, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var listModel models.UserListModel
	if err := tx.Where("service_id = ?", serviceID.String()).First(&listModel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, nil
		}
		r.logger.Errorw("failed to find user list", "service_id", serviceID, "error", err)
		return uuid.Nil, fmt.Errorf("failed to find user list: %w", err)
	}

	if err := r.deleteByServiceID(tx, serviceID.String()); err != nil {
		return uuid.Nil, err
	}

	deletedID, err := uuid.Parse(listModel.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user list id %q: %w", listModel.ID, err)
	}
	return deletedID, nil
}

// FindByServiceID retrieves the roster for a service, returning nil when absent
func (r *UserListRepositoryImpl) FindByServiceID(ctx context.Context, serviceID uuid.UUID) (*userlist.UserList, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var listModel models.UserListModel
	if err := tx.Where("service_id = ?", serviceID.String()).First(&listModel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find user list", "service_id", serviceID, "error", err)
		return nil, fmt.Errorf("failed to find user list: %w", err)
	}

	var itemModels []models.UserListItemModel
	if err := tx.Where("user_list_id = ?", listModel.ID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		r.logger.Errorw("failed to load user list items", "user_list_id", listModel.ID, "error", err)
		return nil, fmt.Errorf("failed to load user list items: %w", err)
	}

	return userListToDomain(&listModel, itemModels)
}

func (r *UserListRepositoryImpl) deleteByServiceID(tx *gorm.DB, serviceID string) error {
	if err := tx.Where("user_list_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.UserListModel{}).
			Select("id").
			Where("service_id = ?", serviceID),
	).Delete(&models.UserListItemModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete user list items", "service_id", serviceID, "error", err)
		return fmt.Errorf("failed to delete user list items: %w", err)
	}

	if err := tx.Where("service_id = ?", serviceID).Delete(&models.UserListModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete user list", "service_id", serviceID, "error", err)
		return fmt.Errorf("failed to delete user list: %w", err)
	}
	return nil
}

func userListToDomain(listModel *models.UserListModel, itemModels []models.UserListItemModel) (*userlist.UserList, error) {
	listID, err := uuid.Parse(listModel.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user list id %q: %w", listModel.ID, err)
	}
	serviceID, err := uuid.Parse(listModel.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id %q: %w", listModel.ServiceID, err)
	}

	items := make([]*userlist.UserListItem, len(itemModels))
	for i := range itemModels {
		im := &itemModels[i]
		itemID, err := uuid.Parse(im.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid user list item id %q: %w", im.ID, err)
		}
		items[i] = userlist.ReconstructUserListItem(itemID, im.Name, im.Email, im.CorpUserID, im.Area, im.CostCenter)
	}

	return userlist.ReconstructUserList(listID, serviceID, items), nil
}

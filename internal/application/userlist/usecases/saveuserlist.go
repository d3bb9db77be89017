package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/application/userlist/dto"
	"tally/internal/domain/service"
	"tally/internal/domain/userlist"
	"tally/internal/shared/db"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// SaveUserListItemCommand is one roster entry of an upload.
type SaveUserListItemCommand struct {
	Name       string
	Email      string
	CorpUserID string
	Area       string
	CostCenter string
}

// SaveUserListCommand replaces the roster of a service wholesale.
type SaveUserListCommand struct {
	ServiceID string
	Items     []SaveUserListItemCommand
}

// SaveUserListUseCase replaces a service's roster: the previous list is
// dropped and the upload becomes the new one, all in one transaction.
type SaveUserListUseCase struct {
	serviceRepo  service.Repository
	userListRepo userlist.Repository
	txMgr        db.TxManager
	logger       logger.Interface
}

// NewSaveUserListUseCase creates a new save user list use case
func NewSaveUserListUseCase(
	serviceRepo service.Repository,
	userListRepo userlist.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *SaveUserListUseCase {
	return &SaveUserListUseCase{
		serviceRepo:  serviceRepo,
		userListRepo: userListRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

// Execute executes the save user list use case
func (uc *SaveUserListUseCase) Execute(ctx context.Context, cmd SaveUserListCommand) (*dto.UserListResponse, error) {
	uc.logger.Infow("executing save user list use case", "service_id", cmd.ServiceID, "items", len(cmd.Items))

	serviceID, err := uuid.Parse(cmd.ServiceID)
	if err != nil {
		return nil, errors.NewValidationError("Service id must be a valid UUID")
	}

	// Empty uploads are rejected up front so the existing roster is never
	// touched.
	if len(cmd.Items) == 0 {
		return nil, errors.NewValidationError("User list must have at least one item")
	}

	s, err := uc.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Service not found")
	}

	items := make([]*userlist.UserListItem, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		items = append(items, userlist.NewUserListItem(item.Name, item.Email, item.CorpUserID, item.Area, item.CostCenter))
	}
	list := userlist.NewUserList(serviceID, items)
	if err := list.Validate(); err != nil {
		uc.logger.Warnw("user list validation failed", "error", err, "service_id", serviceID)
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.userListRepo.DeleteByServiceID(txCtx, serviceID); err != nil {
			return fmt.Errorf("failed to drop previous user list: %w", err)
		}
		if err := uc.userListRepo.Save(txCtx, list); err != nil {
			return fmt.Errorf("failed to save user list: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("save user list transaction failed", "error", err, "service_id", serviceID)
		return nil, err
	}

	uc.logger.Infow("user list saved", "service_id", serviceID, "users_number", list.UsersNumber())
	return dto.FromUserList(list), nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/domain/userlist"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// DeleteUserListUseCase removes the roster of a service.
type DeleteUserListUseCase struct {
	userListRepo userlist.Repository
	logger       logger.Interface
}

// NewDeleteUserListUseCase creates a new delete user list use case
func NewDeleteUserListUseCase(userListRepo userlist.Repository, logger logger.Interface) *DeleteUserListUseCase {
	return &DeleteUserListUseCase{
		userListRepo: userListRepo,
		logger:       logger,
	}
}

// Execute executes the delete user list use case
func (uc *DeleteUserListUseCase) Execute(ctx context.Context, rawServiceID string) error {
	uc.logger.Infow("executing delete user list use case", "service_id", rawServiceID)

	serviceID, err := uuid.Parse(rawServiceID)
	if err != nil {
		return errors.NewValidationError("Service id must be a valid UUID")
	}

	deletedID, err := uc.userListRepo.DeleteByServiceID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to delete user list", "error", err, "service_id", serviceID)
		return fmt.Errorf("failed to delete user list: %w", err)
	}
	if deletedID == uuid.Nil {
		return errors.NewNotFoundError("User list not found")
	}

	uc.logger.Infow("user list deleted", "service_id", serviceID, "user_list_id", deletedID)
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tally/internal/application/userlist/dto"
	"tally/internal/domain/userlist"
	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// GetUserListUseCase loads the roster of a service.
type GetUserListUseCase struct {
	userListRepo userlist.Repository
	logger       logger.Interface
}

// NewGetUserListUseCase creates a new get user list use case
func NewGetUserListUseCase(userListRepo userlist.Repository, logger logger.Interface) *GetUserListUseCase {
	return &GetUserListUseCase{
		userListRepo: userListRepo,
		logger:       logger,
	}
}

// Execute executes the get user list use case
func (uc *GetUserListUseCase) Execute(ctx context.Context, rawServiceID string) (*dto.UserListResponse, error) {
	serviceID, err := uuid.Parse(rawServiceID)
	if err != nil {
		return nil, errors.NewValidationError("Service id must be a valid UUID")
	}

	list, err := uc.userListRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to load user list", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to load user list: %w", err)
	}
	if list == nil {
		return nil, errors.NewNotFoundError("User list not found")
	}

	return dto.FromUserList(list), nil
}

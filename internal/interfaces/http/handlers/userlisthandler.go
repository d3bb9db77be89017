package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/application/userlist/usecases"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

// UserListHandler handles service roster endpoints.
type UserListHandler struct {
	saveUserListUseCase   *usecases.SaveUserListUseCase
	deleteUserListUseCase *usecases.DeleteUserListUseCase
	getUserListUseCase    *usecases.GetUserListUseCase
	logger                logger.Interface
}

// NewUserListHandler creates a new user list handler.
func NewUserListHandler(
	saveUserListUseCase *usecases.SaveUserListUseCase,
	deleteUserListUseCase *usecases.DeleteUserListUseCase,
	getUserListUseCase *usecases.GetUserListUseCase,
	logger logger.Interface,
) *UserListHandler {
	return &UserListHandler{
		saveUserListUseCase:   saveUserListUseCase,
		deleteUserListUseCase: deleteUserListUseCase,
		getUserListUseCase:    getUserListUseCase,
		logger:                logger,
	}
}

type userListItemRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CorpUserID string `json:"corp_user_id"`
	Area       string `json:"area"`
	CostCenter string `json:"cost_center"`
}

type saveUserListRequest struct {
	Items []userListItemRequest `json:"items"`
}

// SaveUserList handles PUT /api/v1/services/:id/users. The uploaded
// roster replaces the previous one wholesale.
func (h *UserListHandler) SaveUserList(c *gin.Context) {
	var req saveUserListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	items := make([]usecases.SaveUserListItemCommand, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecases.SaveUserListItemCommand{
			Name:       item.Name,
			Email:      item.Email,
			CorpUserID: item.CorpUserID,
			Area:       item.Area,
			CostCenter: item.CostCenter,
		})
	}

	resp, err := h.saveUserListUseCase.Execute(c.Request.Context(), usecases.SaveUserListCommand{
		ServiceID: c.Param("id"),
		Items:     items,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User list saved successfully", resp)
}

// DeleteUserList handles DELETE /api/v1/services/:id/users
func (h *UserListHandler) DeleteUserList(c *gin.Context) {
	if err := h.deleteUserListUseCase.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// GetUserList handles GET /api/v1/services/:id/users
func (h *UserListHandler) GetUserList(c *gin.Context) {
	resp, err := h.getUserListUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

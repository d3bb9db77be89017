// Package handlers contains the gin HTTP handlers. Handlers bind and
// sanity-check request payloads, then delegate to application use cases.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/application/plan/usecases"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

// PlanHandler handles exchange plan endpoints.
type PlanHandler struct {
	createPlanUseCase *usecases.CreatePlanUseCase
	updatePlanUseCase *usecases.UpdatePlanUseCase
	deletePlanUseCase *usecases.DeletePlanUseCase
	getPlanUseCase    *usecases.GetPlanUseCase
	listPlansUseCase  *usecases.ListPlansUseCase
	logger            logger.Interface
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(
	createPlanUseCase *usecases.CreatePlanUseCase,
	updatePlanUseCase *usecases.UpdatePlanUseCase,
	deletePlanUseCase *usecases.DeletePlanUseCase,
	getPlanUseCase *usecases.GetPlanUseCase,
	listPlansUseCase *usecases.ListPlansUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUseCase: createPlanUseCase,
		updatePlanUseCase: updatePlanUseCase,
		deletePlanUseCase: deletePlanUseCase,
		getPlanUseCase:    getPlanUseCase,
		listPlansUseCase:  listPlansUseCase,
		logger:            logger,
	}
}

type createPlanRequest struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description" binding:"required"`
	Euro        string `json:"euro" binding:"required"`
	PlanDate    string `json:"plan_date" binding:"required"`
}

type updatePlanRequest struct {
	Code        *string `json:"code"`
	Description *string `json:"description"`
	Euro        *string `json:"euro"`
	PlanDate    *string `json:"plan_date"`
}

// CreatePlan handles POST /api/v1/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.createPlanUseCase.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Code:        req.Code,
		Description: req.Description,
		Euro:        req.Euro,
		PlanDate:    req.PlanDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Plan created successfully", resp)
}

// UpdatePlan handles PUT /api/v1/plans/:id
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req updatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.updatePlanUseCase.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanID:      c.Param("id"),
		Code:        req.Code,
		Description: req.Description,
		Euro:        req.Euro,
		PlanDate:    req.PlanDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", resp)
}

// DeletePlan handles DELETE /api/v1/plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.deletePlanUseCase.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// GetPlan handles GET /api/v1/plans/:id
func (h *PlanHandler) GetPlan(c *gin.Context) {
	resp, err := h.getPlanUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListPlans handles GET /api/v1/plans
func (h *PlanHandler) ListPlans(c *gin.Context) {
	resp, err := h.listPlansUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

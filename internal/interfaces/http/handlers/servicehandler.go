package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/application/service/usecases"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

// ServiceHandler handles service and system allocation endpoints.
type ServiceHandler struct {
	createServiceUseCase       *usecases.CreateServiceUseCase
	updateServiceUseCase       *usecases.UpdateServiceUseCase
	deleteServiceUseCase       *usecases.DeleteServiceUseCase
	saveServiceSystemUseCase   *usecases.SaveServiceSystemUseCase
	removeServiceSystemUseCase *usecases.RemoveServiceSystemUseCase
	getServiceUseCase          *usecases.GetServiceUseCase
	listServicesUseCase        *usecases.ListServicesUseCase
	logger                     logger.Interface
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(
	createServiceUseCase *usecases.CreateServiceUseCase,
	updateServiceUseCase *usecases.UpdateServiceUseCase,
	deleteServiceUseCase *usecases.DeleteServiceUseCase,
	saveServiceSystemUseCase *usecases.SaveServiceSystemUseCase,
	removeServiceSystemUseCase *usecases.RemoveServiceSystemUseCase,
	getServiceUseCase *usecases.GetServiceUseCase,
	listServicesUseCase *usecases.ListServicesUseCase,
	logger logger.Interface,
) *ServiceHandler {
	return &ServiceHandler{
		createServiceUseCase:       createServiceUseCase,
		updateServiceUseCase:       updateServiceUseCase,
		deleteServiceUseCase:       deleteServiceUseCase,
		saveServiceSystemUseCase:   saveServiceSystemUseCase,
		removeServiceSystemUseCase: removeServiceSystemUseCase,
		getServiceUseCase:          getServiceUseCase,
		listServicesUseCase:        listServicesUseCase,
		logger:                     logger,
	}
}

type createServiceRequest struct {
	Name               string  `json:"name" binding:"required"`
	Description        string  `json:"description" binding:"required"`
	RunAmount          string  `json:"run_amount" binding:"required"`
	ChgAmount          string  `json:"chg_amount" binding:"required"`
	Currency           string  `json:"currency" binding:"required"`
	ResponsibleEmail   string  `json:"responsible_email" binding:"required"`
	ProviderAllocation string  `json:"provider_allocation" binding:"required"`
	LocalAllocation    string  `json:"local_allocation" binding:"required"`
	DocumentURL        *string `json:"document_url"`
}

type updateServiceRequest struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	RunAmount          *string  `json:"run_amount"`
	ChgAmount          *string  `json:"chg_amount"`
	Currency           *string  `json:"currency"`
	ResponsibleEmail   *string  `json:"responsible_email"`
	ProviderAllocation *string  `json:"provider_allocation"`
	LocalAllocation    *string  `json:"local_allocation"`
	Status             *string  `json:"status"`
	ValidatorEmail     *string  `json:"validator_email"`
	DocumentURL        **string `json:"document_url"`
}

type saveServiceSystemRequest struct {
	Allocation string `json:"allocation" binding:"required"`
}

// CreateService handles POST /api/v1/agreements/:id/services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.createServiceUseCase.Execute(c.Request.Context(), usecases.CreateServiceCommand{
		AgreementID:        c.Param("id"),
		Name:               req.Name,
		Description:        req.Description,
		RunAmount:          req.RunAmount,
		ChgAmount:          req.ChgAmount,
		Currency:           req.Currency,
		ResponsibleEmail:   req.ResponsibleEmail,
		ProviderAllocation: req.ProviderAllocation,
		LocalAllocation:    req.LocalAllocation,
		DocumentURL:        req.DocumentURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Service created successfully", resp)
}

// UpdateService handles PUT /api/v1/services/:id
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.updateServiceUseCase.Execute(c.Request.Context(), usecases.UpdateServiceCommand{
		ServiceID:          c.Param("id"),
		Name:               req.Name,
		Description:        req.Description,
		RunAmount:          req.RunAmount,
		ChgAmount:          req.ChgAmount,
		Currency:           req.Currency,
		ResponsibleEmail:   req.ResponsibleEmail,
		ProviderAllocation: req.ProviderAllocation,
		LocalAllocation:    req.LocalAllocation,
		Status:             req.Status,
		ValidatorEmail:     req.ValidatorEmail,
		DocumentURL:        req.DocumentURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service updated successfully", resp)
}

// DeleteService handles DELETE /api/v1/services/:id
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.deleteServiceUseCase.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// SaveServiceSystem handles PUT /api/v1/services/:id/systems/:systemId
func (h *ServiceHandler) SaveServiceSystem(c *gin.Context) {
	var req saveServiceSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.saveServiceSystemUseCase.Execute(c.Request.Context(), usecases.SaveServiceSystemCommand{
		ServiceID:  c.Param("id"),
		SystemID:   c.Param("systemId"),
		Allocation: req.Allocation,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "System allocation saved successfully", resp)
}

// RemoveServiceSystem handles DELETE /api/v1/services/:id/systems/:systemId
func (h *ServiceHandler) RemoveServiceSystem(c *gin.Context) {
	resp, err := h.removeServiceSystemUseCase.Execute(c.Request.Context(), usecases.RemoveServiceSystemCommand{
		ServiceID: c.Param("id"),
		SystemID:  c.Param("systemId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "System allocation removed successfully", resp)
}

// GetService handles GET /api/v1/services/:id
func (h *ServiceHandler) GetService(c *gin.Context) {
	resp, err := h.getServiceUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListServices handles GET /api/v1/agreements/:id/services
func (h *ServiceHandler) ListServices(c *gin.Context) {
	resp, err := h.listServicesUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

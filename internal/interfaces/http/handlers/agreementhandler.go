package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tally/internal/application/agreement/usecases"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

// AgreementHandler handles service agreement endpoints.
type AgreementHandler struct {
	createAgreementUseCase *usecases.CreateAgreementUseCase
	updateAgreementUseCase *usecases.UpdateAgreementUseCase
	deleteAgreementUseCase *usecases.DeleteAgreementUseCase
	createRevisionUseCase  *usecases.CreateAgreementRevisionUseCase
	getAgreementUseCase    *usecases.GetAgreementUseCase
	listAgreementsUseCase  *usecases.ListAgreementsUseCase
	logger                 logger.Interface
}

// NewAgreementHandler creates a new agreement handler.
func NewAgreementHandler(
	createAgreementUseCase *usecases.CreateAgreementUseCase,
	updateAgreementUseCase *usecases.UpdateAgreementUseCase,
	deleteAgreementUseCase *usecases.DeleteAgreementUseCase,
	createRevisionUseCase *usecases.CreateAgreementRevisionUseCase,
	getAgreementUseCase *usecases.GetAgreementUseCase,
	listAgreementsUseCase *usecases.ListAgreementsUseCase,
	logger logger.Interface,
) *AgreementHandler {
	return &AgreementHandler{
		createAgreementUseCase: createAgreementUseCase,
		updateAgreementUseCase: updateAgreementUseCase,
		deleteAgreementUseCase: deleteAgreementUseCase,
		createRevisionUseCase:  createRevisionUseCase,
		getAgreementUseCase:    getAgreementUseCase,
		listAgreementsUseCase:  listAgreementsUseCase,
		logger:                 logger,
	}
}

type createAgreementRequest struct {
	Year           int     `json:"year" binding:"required"`
	Code           string  `json:"code" binding:"required"`
	RevisionDate   string  `json:"revision_date" binding:"required"`
	ProviderPlanID string  `json:"provider_plan_id" binding:"required"`
	LocalPlanID    string  `json:"local_plan_id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	ContactEmail   string  `json:"contact_email" binding:"required"`
	Comment        *string `json:"comment"`
	DocumentURL    *string `json:"document_url"`
}

// updateAgreementRequest distinguishes absent fields from explicit nulls
// for the two clearable ones, hence the double pointers.
type updateAgreementRequest struct {
	Year           *int     `json:"year"`
	Code           *string  `json:"code"`
	IsRevised      *bool    `json:"is_revised"`
	RevisionDate   *string  `json:"revision_date"`
	ProviderPlanID *string  `json:"provider_plan_id"`
	LocalPlanID    *string  `json:"local_plan_id"`
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	ContactEmail   *string  `json:"contact_email"`
	Comment        **string `json:"comment"`
	DocumentURL    **string `json:"document_url"`
}

type createRevisionRequest struct {
	RevisionDate   string `json:"revision_date" binding:"required"`
	ProviderPlanID string `json:"provider_plan_id" binding:"required"`
	LocalPlanID    string `json:"local_plan_id" binding:"required"`
}

// CreateAgreement handles POST /api/v1/agreements
func (h *AgreementHandler) CreateAgreement(c *gin.Context) {
	var req createAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.createAgreementUseCase.Execute(c.Request.Context(), usecases.CreateAgreementCommand{
		Year:           req.Year,
		Code:           req.Code,
		RevisionDate:   req.RevisionDate,
		ProviderPlanID: req.ProviderPlanID,
		LocalPlanID:    req.LocalPlanID,
		Name:           req.Name,
		Description:    req.Description,
		ContactEmail:   req.ContactEmail,
		Comment:        req.Comment,
		DocumentURL:    req.DocumentURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Agreement created successfully", resp)
}

// UpdateAgreement handles PUT /api/v1/agreements/:id
func (h *AgreementHandler) UpdateAgreement(c *gin.Context) {
	var req updateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.updateAgreementUseCase.Execute(c.Request.Context(), usecases.UpdateAgreementCommand{
		AgreementID:    c.Param("id"),
		Year:           req.Year,
		Code:           req.Code,
		IsRevised:      req.IsRevised,
		RevisionDate:   req.RevisionDate,
		ProviderPlanID: req.ProviderPlanID,
		LocalPlanID:    req.LocalPlanID,
		Name:           req.Name,
		Description:    req.Description,
		ContactEmail:   req.ContactEmail,
		Comment:        req.Comment,
		DocumentURL:    req.DocumentURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agreement updated successfully", resp)
}

// DeleteAgreement handles DELETE /api/v1/agreements/:id
func (h *AgreementHandler) DeleteAgreement(c *gin.Context) {
	if err := h.deleteAgreementUseCase.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// CreateRevision handles POST /api/v1/agreements/:id/revisions
func (h *AgreementHandler) CreateRevision(c *gin.Context) {
	var req createRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := h.createRevisionUseCase.Execute(c.Request.Context(), usecases.CreateAgreementRevisionCommand{
		AgreementID:    c.Param("id"),
		RevisionDate:   req.RevisionDate,
		ProviderPlanID: req.ProviderPlanID,
		LocalPlanID:    req.LocalPlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Agreement revision created successfully", resp)
}

// GetAgreement handles GET /api/v1/agreements/:id
func (h *AgreementHandler) GetAgreement(c *gin.Context) {
	resp, err := h.getAgreementUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListAgreements handles GET /api/v1/agreements. Passing both year and
// code narrows the listing to a single revision lineage.
func (h *AgreementHandler) ListAgreements(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid year parameter")
			return
		}
		year = parsed
	}

	resp, err := h.listAgreementsUseCase.Execute(c.Request.Context(), usecases.ListAgreementsQuery{
		Year: year,
		Code: c.Query("code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

package controller

import (
	"net/http"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/middleware"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-gonic/gin"
)

type FormController struct {
	formSvc service.FormService
}

func NewFormController(formSvc service.FormService) *FormController {
	return &FormController{formSvc: formSvc}
}

// CreateForm godoc
// @Summary Create a feedback form
// @Description New forms start in draft status and must be published before accepting responses
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form body dto.FormCreateDTO true "Form data"
// @Success 201 {object} dto.FormResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /forms [post]
func (ctrl *FormController) CreateForm(c *gin.Context) {
	var req dto.FormCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := ctrl.formSvc.CreateForm(middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

// ListForms godoc
// @Summary List forms
// @Description Instructors see every form in their organization; students see published forms only
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FormSummaryDTO
// @Router /forms [get]
func (ctrl *FormController) ListForms(c *gin.Context) {
	forms, err := ctrl.formSvc.ListForms(middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Get a form with its questions
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.FormResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id} [get]
func (ctrl *FormController) GetForm(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	form, err := ctrl.formSvc.GetForm(middleware.GetActor(c), formID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// UpdateForm godoc
// @Summary Update form metadata
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Param form body dto.FormUpdateDTO true "Fields to update"
// @Success 200 {object} dto.FormResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{form_id} [put]
func (ctrl *FormController) UpdateForm(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	var req dto.FormUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := ctrl.formSvc.UpdateForm(middleware.GetActor(c), formID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// DeleteForm godoc
// @Summary Delete a form and everything under it
// @Tags forms
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{form_id} [delete]
func (ctrl *FormController) DeleteForm(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	if err := ctrl.formSvc.DeleteForm(middleware.GetActor(c), formID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateFormStatus godoc
// @Summary Change form status
// @Description Transitions follow draft → published → closed
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Param status body dto.FormStatusUpdateDTO true "Target status"
// @Success 200 {object} dto.FormResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid transition"
// @Router /forms/{form_id}/status [patch]
func (ctrl *FormController) UpdateFormStatus(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	var req dto.FormStatusUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := ctrl.formSvc.UpdateFormStatus(middleware.GetActor(c), formID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

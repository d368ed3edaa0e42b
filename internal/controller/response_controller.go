package controller

import (
	"net/http"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/middleware"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	responseSvc service.ResponseService
}

func NewResponseController(responseSvc service.ResponseService) *ResponseController {
	return &ResponseController{responseSvc: responseSvc}
}

// SubmitResponse godoc
// @Summary Submit feedback for a form
// @Description One submission per student per form. The form must be published and inside its open/close window.
// @Tags responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Param response body dto.ResponseSubmitDTO true "Answers"
// @Success 201 {object} dto.ResponseSubmittedDTO
// @Failure 400 {object} dto.ErrorResponse "Missing required answers or closed form"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Router /forms/{form_id}/responses [post]
func (ctrl *ResponseController) SubmitResponse(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	var req dto.ResponseSubmitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	submitted, err := ctrl.responseSvc.SubmitResponse(middleware.GetActor(c), formID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submitted)
}

// ListResponses godoc
// @Summary List a form's responses
// @Description Anonymous responses omit the student identity
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Success 200 {array} dto.ResponseSummaryDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /forms/{form_id}/responses [get]
func (ctrl *ResponseController) ListResponses(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	responses, err := ctrl.responseSvc.ListResponses(middleware.GetActor(c), formID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// GetResponse godoc
// @Summary Get one response with its answers
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param response_id path int true "Response ID"
// @Success 200 {object} dto.ResponseDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /responses/{response_id} [get]
func (ctrl *ResponseController) GetResponse(c *gin.Context) {
	responseID, ok := parseIDParam(c, "response_id")
	if !ok {
		return
	}

	response, err := ctrl.responseSvc.GetResponse(middleware.GetActor(c), responseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// ExportResponsesCSV godoc
// @Summary Export a form's responses as CSV
// @Tags responses
// @Produce text/csv
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Success 200 {string} string "CSV file"
// @Failure 403 {object} dto.ErrorResponse
// @Router /forms/{form_id}/responses/export [get]
func (ctrl *ResponseController) ExportResponsesCSV(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	filename, data, err := ctrl.responseSvc.ExportResponsesCSV(middleware.GetActor(c), formID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

package controller

import (
	"net/http"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/middleware"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	questionSvc service.QuestionService
}

func NewQuestionController(questionSvc service.QuestionService) *QuestionController {
	return &QuestionController{questionSvc: questionSvc}
}

// AddQuestion godoc
// @Summary Add a question to a form
// @Description The question is appended at the next position. MCQ questions require options.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "MCQ without options"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id}/questions [post]
func (ctrl *QuestionController) AddQuestion(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	var req dto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := ctrl.questionSvc.AddQuestion(middleware.GetActor(c), formID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary List a form's questions in position order
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{form_id}/questions [get]
func (ctrl *QuestionController) ListQuestions(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	questions, err := ctrl.questionSvc.ListQuestions(middleware.GetActor(c), formID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Fields to update"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{question_id} [put]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	questionID, ok := parseIDParam(c, "question_id")
	if !ok {
		return
	}

	var req dto.QuestionUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := ctrl.questionSvc.UpdateQuestion(middleware.GetActor(c), questionID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Remaining questions are renumbered so positions stay contiguous
// @Tags questions
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{question_id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	questionID, ok := parseIDParam(c, "question_id")
	if !ok {
		return
	}

	if err := ctrl.questionSvc.DeleteQuestion(middleware.GetActor(c), questionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderQuestions godoc
// @Summary Reorder a form's questions
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Param order body dto.QuestionReorderDTO true "Question IDs in the desired order"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Incomplete or foreign question list"
// @Router /forms/{form_id}/questions/reorder [patch]
func (ctrl *QuestionController) ReorderQuestions(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return
	}

	var req dto.QuestionReorderDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	questions, err := ctrl.questionSvc.ReorderQuestions(middleware.GetActor(c), formID, req.QuestionIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

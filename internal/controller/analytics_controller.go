package controller

import (
	"net/http"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/middleware"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-gonic/gin"
)

// AnalyticsController exposes the four analytics engines and the report
// export. Every route requires the caller to own the form (or be an admin);
// ownership is checked here so the engines stay pure computation.
type AnalyticsController struct {
	formSvc      service.FormService
	summarySvc   service.SummaryService
	questionSvc  service.QuestionAnalyticsService
	trendsSvc    service.TrendsService
	sentimentSvc service.SentimentService
	reportSvc    service.ReportService
	reader       repository.AnalyticsReader
}

func NewAnalyticsController(
	formSvc service.FormService,
	summarySvc service.SummaryService,
	questionSvc service.QuestionAnalyticsService,
	trendsSvc service.TrendsService,
	sentimentSvc service.SentimentService,
	reportSvc service.ReportService,
	reader repository.AnalyticsReader,
) *AnalyticsController {
	return &AnalyticsController{
		formSvc:      formSvc,
		summarySvc:   summarySvc,
		questionSvc:  questionSvc,
		trendsSvc:    trendsSvc,
		sentimentSvc: sentimentSvc,
		reportSvc:    reportSvc,
		reader:       reader,
	}
}

// GetSummary godoc
// @Summary Summary statistics for a form
// @Description Totals, completion rate, anonymity split, average rating and a per-day histogram
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.SummaryStatisticsDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id}/analytics/summary [get]
func (ctrl *AnalyticsController) GetSummary(c *gin.Context) {
	formID, ok := ctrl.authorizeForm(c)
	if !ok {
		return
	}

	summary, err := ctrl.summarySvc.SummaryStatistics(formID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetQuestionAnalytics godoc
// @Summary Type-specific analytics for one question
// @Description Rating histogram and mean, MCQ distribution, yes/no split, or word frequencies with samples
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionAnalyticsDTO
// @Failure 404 {object} dto.ErrorResponse "Form or question not found"
// @Router /forms/{form_id}/analytics/questions/{question_id} [get]
func (ctrl *AnalyticsController) GetQuestionAnalytics(c *gin.Context) {
	formID, ok := ctrl.authorizeForm(c)
	if !ok {
		return
	}
	questionID, ok := parseIDParam(c, "question_id")
	if !ok {
		return
	}

	// The path's form must actually contain the question.
	question, err := ctrl.reader.QuestionByID(questionID)
	if err != nil || question.FormID != formID {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found in this form"})
		return
	}

	analytics, err := ctrl.questionSvc.QuestionAnalytics(questionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// GetTrends godoc
// @Summary Response and rating trends over time
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Param period query string false "daily or weekly" default(daily)
// @Success 200 {object} dto.TrendsAnalyticsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id}/analytics/trends [get]
func (ctrl *AnalyticsController) GetTrends(c *gin.Context) {
	formID, ok := ctrl.authorizeForm(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", service.PeriodDaily)
	trends, err := ctrl.trendsSvc.Trends(formID, period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// GetSentiment godoc
// @Summary Keyword-lexicon sentiment over free-text answers
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.SentimentAnalyticsDTO
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id}/analytics/sentiment [get]
func (ctrl *AnalyticsController) GetSentiment(c *gin.Context) {
	formID, ok := ctrl.authorizeForm(c)
	if !ok {
		return
	}

	sentiment, err := ctrl.sentimentSvc.Sentiment(formID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sentiment)
}

// ExportReport godoc
// @Summary Full analytics report for export
// @Description Metadata plus summary, per-question analytics, daily trends and sentiment in one object
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.ExportReportDTO
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id}/analytics/export [get]
func (ctrl *AnalyticsController) ExportReport(c *gin.Context) {
	formID, ok := ctrl.authorizeForm(c)
	if !ok {
		return
	}

	actor := middleware.GetActor(c)
	report, err := ctrl.reportSvc.ExportReport(formID, actor.FullName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (ctrl *AnalyticsController) authorizeForm(c *gin.Context) (uint, bool) {
	formID, ok := parseIDParam(c, "form_id")
	if !ok {
		return 0, false
	}
	if _, err := ctrl.formSvc.AuthorizeFormAccess(middleware.GetActor(c), formID); err != nil {
		respondError(c, err)
		return 0, false
	}
	return formID, true
}

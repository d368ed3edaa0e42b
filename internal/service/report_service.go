package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReportService assembles the full exportable analytics report. It is the
// only place the four engines are composed; none of them call each other.
type ReportService interface {
	ExportReport(formID uint, generatedBy string) (*dto.ExportReportDTO, error)
}

type reportService struct {
	reader       repository.AnalyticsReader
	summarySvc   SummaryService
	questionSvc  QuestionAnalyticsService
	trendsSvc    TrendsService
	sentimentSvc SentimentService
}

func NewReportService(
	reader repository.AnalyticsReader,
	summarySvc SummaryService,
	questionSvc QuestionAnalyticsService,
	trendsSvc TrendsService,
	sentimentSvc SentimentService,
) ReportService {
	return &reportService{
		reader:       reader,
		summarySvc:   summarySvc,
		questionSvc:  questionSvc,
		trendsSvc:    trendsSvc,
		sentimentSvc: sentimentSvc,
	}
}

func (s *reportService) ExportReport(formID uint, generatedBy string) (*dto.ExportReportDTO, error) {
	form, err := s.reader.FormByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching form %d: %w", formID, err)
	}

	summary, err := s.summarySvc.SummaryStatistics(formID)
	if err != nil {
		return nil, fmt.Errorf("summary statistics: %w", err)
	}

	questions, err := s.reader.QuestionsByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}
	questionAnalytics := make([]dto.QuestionAnalyticsDTO, 0, len(questions))
	for _, question := range questions {
		qa, err := s.questionSvc.QuestionAnalytics(question.ID)
		if err != nil {
			return nil, fmt.Errorf("question %d analytics: %w", question.ID, err)
		}
		questionAnalytics = append(questionAnalytics, *qa)
	}

	// Exports always use daily trends.
	trends, err := s.trendsSvc.Trends(formID, PeriodDaily)
	if err != nil {
		return nil, fmt.Errorf("trends: %w", err)
	}

	sentiment, err := s.sentimentSvc.Sentiment(formID)
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	dateRange := "N/A"
	if summary.FirstResponseDate != nil && summary.LastResponseDate != nil {
		dateRange = fmt.Sprintf("%s to %s",
			summary.FirstResponseDate.UTC().Format("2006-01-02"),
			summary.LastResponseDate.UTC().Format("2006-01-02"),
		)
	}

	report := &dto.ExportReportDTO{
		Metadata: dto.ReportMetadataDTO{
			ReportID:       uuid.NewString(),
			FormID:         form.ID,
			FormTitle:      form.Title,
			GeneratedAt:    time.Now().UTC(),
			GeneratedBy:    generatedBy,
			TotalResponses: summary.TotalResponses,
			DateRange:      dateRange,
		},
		Summary:           *summary,
		QuestionAnalytics: questionAnalytics,
		Trends:            *trends,
		Sentiment:         *sentiment,
	}

	log.Info().Uint("form_id", formID).Str("report_id", report.Metadata.ReportID).Msg("Analytics report generated")
	return report, nil
}

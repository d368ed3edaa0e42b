package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SummaryService interface {
	SummaryStatistics(formID uint) (*dto.SummaryStatisticsDTO, error)
}

type summaryService struct {
	reader repository.AnalyticsReader
}

func NewSummaryService(reader repository.AnalyticsReader) SummaryService {
	return &summaryService{reader: reader}
}

func (s *summaryService) SummaryStatistics(formID uint) (*dto.SummaryStatisticsDTO, error) {
	form, err := s.reader.FormByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching form %d: %w", formID, err)
	}

	responses, err := s.reader.ResponsesByForm(formID)
	if err != nil {
		log.Error().Err(err).Uint("form_id", formID).Msg("Failed to load responses for summary")
		return nil, fmt.Errorf("fetching responses: %w", err)
	}

	totalResponses := len(responses)
	if totalResponses == 0 {
		return &dto.SummaryStatisticsDTO{ResponsesByDate: []dto.ResponsesByDateDTO{}}, nil
	}

	anonymousCount := 0
	for _, response := range responses {
		if response.IsAnonymous {
			anonymousCount++
		}
	}

	averageRating, err := s.averageRating(formID)
	if err != nil {
		return nil, err
	}

	completionRate, err := s.completionRate(formID, responses)
	if err != nil {
		return nil, err
	}

	responseRate, err := s.responseRate(form.OrgID, totalResponses)
	if err != nil {
		return nil, err
	}

	firstDate := responses[0].SubmittedAt
	lastDate := responses[0].SubmittedAt
	dateCounts := make(map[string]int)
	for _, response := range responses {
		if response.SubmittedAt.Before(firstDate) {
			firstDate = response.SubmittedAt
		}
		if response.SubmittedAt.After(lastDate) {
			lastDate = response.SubmittedAt
		}
		dateCounts[response.SubmittedAt.UTC().Format("2006-01-02")]++
	}

	dates := make([]string, 0, len(dateCounts))
	for date := range dateCounts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	responsesByDate := make([]dto.ResponsesByDateDTO, 0, len(dates))
	for _, date := range dates {
		responsesByDate = append(responsesByDate, dto.ResponsesByDateDTO{Date: date, Count: dateCounts[date]})
	}

	return &dto.SummaryStatisticsDTO{
		TotalResponses:    totalResponses,
		AnonymousCount:    anonymousCount,
		IdentifiedCount:   totalResponses - anonymousCount,
		AverageRating:     averageRating,
		CompletionRate:    completionRate,
		ResponseRate:      responseRate,
		FirstResponseDate: &firstDate,
		LastResponseDate:  &lastDate,
		ResponsesByDate:   responsesByDate,
	}, nil
}

// averageRating averages every parseable integer answer to rating questions in
// the form. Unparseable values are skipped, never errors.
func (s *summaryService) averageRating(formID uint) (*float64, error) {
	ratingAnswers, err := s.reader.AnswersByFormAndType(formID, model.QuestionTypeRating)
	if err != nil {
		return nil, fmt.Errorf("fetching rating answers: %w", err)
	}

	sum, count := 0, 0
	for _, answer := range ratingAnswers {
		if rating, err := strconv.Atoi(answer.AnswerValue); err == nil {
			sum += rating
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := round2(float64(sum) / float64(count))
	return &avg, nil
}

// completionRate treats a response as complete when its answer count reaches
// the form's required-question count. It does not check which questions were
// answered; see the field doc on SummaryStatisticsDTO.
func (s *summaryService) completionRate(formID uint, responses []model.Response) (float64, error) {
	questions, err := s.reader.QuestionsByForm(formID)
	if err != nil {
		return 0, fmt.Errorf("fetching questions: %w", err)
	}
	requiredCount := 0
	for _, question := range questions {
		if question.IsRequired {
			requiredCount++
		}
	}

	answerCounts, err := s.reader.AnswerCountsByResponse(formID)
	if err != nil {
		return 0, fmt.Errorf("counting answers: %w", err)
	}

	completed := 0
	for _, response := range responses {
		if answerCounts[response.ID] >= requiredCount {
			completed++
		}
	}
	return percentage(completed, len(responses)), nil
}

func (s *summaryService) responseRate(orgID uint, totalResponses int) (float64, error) {
	studentCount, err := s.reader.StudentCountByOrg(orgID)
	if err != nil {
		return 0, fmt.Errorf("counting students: %w", err)
	}
	if studentCount == 0 {
		return 0, nil
	}
	rate := round2(float64(totalResponses) / float64(studentCount) * 100)
	if rate > 100 {
		rate = 100
	}
	return rate, nil
}

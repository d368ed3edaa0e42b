package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"gorm.io/gorm"
)

const (
	PeriodDaily  = "daily"
	PeriodWeekly = "weekly"
)

type TrendsService interface {
	Trends(formID uint, period string) (*dto.TrendsAnalyticsDTO, error)
}

type trendsService struct {
	reader repository.AnalyticsReader
}

func NewTrendsService(reader repository.AnalyticsReader) TrendsService {
	return &trendsService{reader: reader}
}

func (s *trendsService) Trends(formID uint, period string) (*dto.TrendsAnalyticsDTO, error) {
	if period != PeriodDaily && period != PeriodWeekly {
		return nil, fmt.Errorf("period must be %q or %q: %w", PeriodDaily, PeriodWeekly, ErrValidation)
	}

	form, err := s.reader.FormByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching form %d: %w", formID, err)
	}

	responses, err := s.reader.ResponsesByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("fetching responses: %w", err)
	}

	ratingsByResponse, err := s.ratingsByResponse(formID)
	if err != nil {
		return nil, err
	}

	responseCounts := make(map[string]int)
	ratingGroups := make(map[string][]int)
	for _, response := range responses {
		bucket := bucketKey(response, period)
		responseCounts[bucket]++
		if ratings := ratingsByResponse[response.ID]; len(ratings) > 0 {
			ratingGroups[bucket] = append(ratingGroups[bucket], ratings...)
		}
	}

	buckets := make([]string, 0, len(responseCounts))
	for bucket := range responseCounts {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	responseTrend := make([]dto.TrendPointDTO, 0, len(buckets))
	for _, bucket := range buckets {
		responseTrend = append(responseTrend, dto.TrendPointDTO{
			Date:  bucket,
			Value: float64(responseCounts[bucket]),
			Count: responseCounts[bucket],
		})
	}

	var ratingTrend []dto.TrendPointDTO
	if len(ratingGroups) > 0 {
		for _, bucket := range buckets {
			ratings, ok := ratingGroups[bucket]
			if !ok {
				continue // buckets without parseable ratings are omitted, not zero-filled
			}
			sum := 0
			for _, rating := range ratings {
				sum += rating
			}
			ratingTrend = append(ratingTrend, dto.TrendPointDTO{
				Date:  bucket,
				Value: round2(float64(sum) / float64(len(ratings))),
				Count: len(ratings),
			})
		}
	}

	result := &dto.TrendsAnalyticsDTO{
		FormID:        form.ID,
		FormTitle:     form.Title,
		Period:        period,
		ResponseTrend: responseTrend,
		RatingTrend:   ratingTrend,
	}

	// Peak bucket: maximum count, earliest date on ties.
	if len(buckets) > 0 {
		peakDate := buckets[0]
		for _, bucket := range buckets[1:] {
			if responseCounts[bucket] > responseCounts[peakDate] {
				peakDate = bucket
			}
		}
		peakCount := responseCounts[peakDate]
		result.PeakResponseDate = &peakDate
		result.PeakResponseCount = &peakCount
	}
	return result, nil
}

// ratingsByResponse collects the parseable rating values of every response in
// the form, keyed by response id.
func (s *trendsService) ratingsByResponse(formID uint) (map[uint][]int, error) {
	ratingAnswers, err := s.reader.AnswersByFormAndType(formID, model.QuestionTypeRating)
	if err != nil {
		return nil, fmt.Errorf("fetching rating answers: %w", err)
	}
	ratings := make(map[uint][]int)
	for _, answer := range ratingAnswers {
		if rating, err := strconv.Atoi(answer.AnswerValue); err == nil {
			ratings[answer.ResponseID] = append(ratings[answer.ResponseID], rating)
		}
	}
	return ratings, nil
}

// bucketKey maps a response to its daily date or to the Monday on/before its
// submission date for weekly grouping. All dates are taken in UTC.
func bucketKey(response model.Response, period string) string {
	submitted := response.SubmittedAt.UTC()
	if period == PeriodWeekly {
		offset := (int(submitted.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
		submitted = submitted.AddDate(0, 0, -offset)
	}
	return submitted.Format("2006-01-02")
}

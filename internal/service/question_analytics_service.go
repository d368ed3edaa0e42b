package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"gorm.io/gorm"
)

type QuestionAnalyticsService interface {
	QuestionAnalytics(questionID uint) (*dto.QuestionAnalyticsDTO, error)
}

type questionAnalyticsService struct {
	reader repository.AnalyticsReader
}

func NewQuestionAnalyticsService(reader repository.AnalyticsReader) QuestionAnalyticsService {
	return &questionAnalyticsService{reader: reader}
}

func (s *questionAnalyticsService) QuestionAnalytics(questionID uint) (*dto.QuestionAnalyticsDTO, error) {
	question, err := s.reader.QuestionByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching question %d: %w", questionID, err)
	}

	answers, err := s.reader.AnswersByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("fetching answers: %w", err)
	}

	result := &dto.QuestionAnalyticsDTO{
		QuestionID:     question.ID,
		QuestionText:   question.QuestionText,
		QuestionType:   question.QuestionType,
		TotalResponses: len(answers),
	}
	if len(answers) == 0 {
		return result, nil
	}

	switch question.QuestionType {
	case model.QuestionTypeRating:
		s.ratingAnalytics(result, answers)
	case model.QuestionTypeMCQ:
		s.mcqAnalytics(result, answers)
	case model.QuestionTypeYesNo:
		s.yesNoAnalytics(result, answers)
	case model.QuestionTypeText:
		s.textAnalytics(result, answers)
	}
	return result, nil
}

// ratingAnalytics builds the histogram and mean. Percentages are taken over
// all answers, the mean over parseable values only.
func (s *questionAnalyticsService) ratingAnalytics(result *dto.QuestionAnalyticsDTO, answers []model.Answer) {
	counts := make(map[int]int)
	sum, parseable := 0, 0
	for _, answer := range answers {
		rating, err := strconv.Atoi(answer.AnswerValue)
		if err != nil {
			continue
		}
		counts[rating]++
		sum += rating
		parseable++
	}

	ratings := make([]int, 0, len(counts))
	for rating := range counts {
		ratings = append(ratings, rating)
	}
	sort.Ints(ratings)

	distribution := make([]dto.RatingBucketDTO, 0, len(ratings))
	for _, rating := range ratings {
		distribution = append(distribution, dto.RatingBucketDTO{
			Rating:     rating,
			Count:      counts[rating],
			Percentage: percentage(counts[rating], result.TotalResponses),
		})
	}
	result.RatingDistribution = distribution

	if parseable > 0 {
		avg := round2(float64(sum) / float64(parseable))
		result.AverageRating = &avg
	}
}

// mcqAnalytics counts raw answer strings without validating them against the
// question's option list; unrecognized values still show up in the histogram.
func (s *questionAnalyticsService) mcqAnalytics(result *dto.QuestionAnalyticsDTO, answers []model.Answer) {
	counts := make(map[string]int)
	var order []string
	for _, answer := range answers {
		if _, seen := counts[answer.AnswerValue]; !seen {
			order = append(order, answer.AnswerValue)
		}
		counts[answer.AnswerValue]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	distribution := make([]dto.OptionBucketDTO, 0, len(order))
	for _, option := range order {
		distribution = append(distribution, dto.OptionBucketDTO{
			Option:     option,
			Count:      counts[option],
			Percentage: percentage(counts[option], result.TotalResponses),
		})
	}
	result.MCQDistribution = distribution

	if len(distribution) > 0 {
		top := distribution[0].Option
		result.MostSelectedOption = &top
	}
}

// yesNoAnalytics matches the literal "yes" case-insensitively; every other
// value, malformed ones included, counts as no.
func (s *questionAnalyticsService) yesNoAnalytics(result *dto.QuestionAnalyticsDTO, answers []model.Answer) {
	yesCount := 0
	for _, answer := range answers {
		if strings.EqualFold(answer.AnswerValue, "yes") {
			yesCount++
		}
	}
	noCount := result.TotalResponses - yesCount
	result.YesNoDistribution = &dto.YesNoDistributionDTO{
		YesCount:      yesCount,
		NoCount:       noCount,
		YesPercentage: percentage(yesCount, result.TotalResponses),
		NoPercentage:  percentage(noCount, result.TotalResponses),
	}
}

func (s *questionAnalyticsService) textAnalytics(result *dto.QuestionAnalyticsDTO, answers []model.Answer) {
	var builder strings.Builder
	for _, answer := range answers {
		builder.WriteString(answer.AnswerValue)
		builder.WriteString(" ")
	}

	words := tokenizeWords(builder.String(), 4)
	frequencies := topWords(countWords(words, textStopWords), 20)

	result.WordFrequencies = make([]dto.WordFrequencyDTO, 0, len(frequencies))
	for _, wc := range frequencies {
		result.WordFrequencies = append(result.WordFrequencies, dto.WordFrequencyDTO{
			Word:      wc.Word,
			Frequency: wc.Count,
		})
	}

	sampleCount := len(answers)
	if sampleCount > 5 {
		sampleCount = 5
	}
	samples := make([]string, 0, sampleCount)
	for _, answer := range answers[:sampleCount] {
		samples = append(samples, answer.AnswerValue)
	}
	result.SampleResponses = samples
}

package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"gorm.io/gorm"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Fixed keyword lexicons. Classification is plain set overlap, not a model.
var positiveLexicon = map[string]bool{
	"excellent": true, "great": true, "good": true, "love": true,
	"amazing": true, "wonderful": true, "helpful": true, "clear": true,
	"best": true, "awesome": true, "fantastic": true, "perfect": true,
}

var negativeLexicon = map[string]bool{
	"bad": true, "poor": true, "terrible": true, "worst": true,
	"boring": true, "difficult": true, "confusing": true, "unclear": true,
	"useless": true, "hate": true, "disappointing": true,
}

type SentimentService interface {
	Sentiment(formID uint) (*dto.SentimentAnalyticsDTO, error)
}

type sentimentService struct {
	reader repository.AnalyticsReader
}

func NewSentimentService(reader repository.AnalyticsReader) SentimentService {
	return &sentimentService{reader: reader}
}

func (s *sentimentService) Sentiment(formID uint) (*dto.SentimentAnalyticsDTO, error) {
	form, err := s.reader.FormByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching form %d: %w", formID, err)
	}

	textAnswers, err := s.reader.AnswersByFormAndType(formID, model.QuestionTypeText)
	if err != nil {
		return nil, fmt.Errorf("fetching text answers: %w", err)
	}

	total := len(textAnswers)
	if total == 0 {
		return &dto.SentimentAnalyticsDTO{
			FormID:    form.ID,
			FormTitle: form.Title,
			Summary: dto.SentimentSummaryDTO{
				OverallSentiment: "no data",
			},
			TopPositiveResponses: []dto.SentimentScoreDTO{},
			TopNegativeResponses: []dto.SentimentScoreDTO{},
			KeyThemes:            []string{},
		}, nil
	}

	var positives, negatives []dto.SentimentScoreDTO
	positiveCount, negativeCount := 0, 0
	for _, answer := range textAnswers {
		score := classifySentiment(answer)
		switch score.Sentiment {
		case SentimentPositive:
			positiveCount++
			positives = append(positives, score)
		case SentimentNegative:
			negativeCount++
			negatives = append(negatives, score)
		}
	}
	neutralCount := total - positiveCount - negativeCount

	overall := "mixed"
	switch {
	case positiveCount > negativeCount*2:
		overall = "mostly positive"
	case negativeCount > positiveCount*2:
		overall = "mostly negative"
	}

	return &dto.SentimentAnalyticsDTO{
		FormID:             form.ID,
		FormTitle:          form.Title,
		TotalTextResponses: total,
		Summary: dto.SentimentSummaryDTO{
			PositiveCount:      positiveCount,
			NegativeCount:      negativeCount,
			NeutralCount:       neutralCount,
			PositivePercentage: percentage(positiveCount, total),
			NegativePercentage: percentage(negativeCount, total),
			NeutralPercentage:  percentage(neutralCount, total),
			OverallSentiment:   overall,
		},
		TopPositiveResponses: topByConfidence(positives, 5),
		TopNegativeResponses: topByConfidence(negatives, 5),
		KeyThemes:            keyThemes(textAnswers),
	}, nil
}

// classifySentiment compares lexicon overlap of the answer's word set.
// Confidence saturates at three hits; neutral answers get a fixed 0.5.
func classifySentiment(answer model.Answer) dto.SentimentScoreDTO {
	words := tokenizeWords(answer.AnswerValue, 1)
	wordSet := make(map[string]bool, len(words))
	for _, word := range words {
		wordSet[word] = true
	}

	positiveHits, negativeHits := 0, 0
	for word := range wordSet {
		if positiveLexicon[word] {
			positiveHits++
		}
		if negativeLexicon[word] {
			negativeHits++
		}
	}

	sentiment := SentimentNeutral
	confidence := 0.5
	switch {
	case positiveHits > negativeHits:
		sentiment = SentimentPositive
		confidence = float64(positiveHits) / 3.0
	case negativeHits > positiveHits:
		sentiment = SentimentNegative
		confidence = float64(negativeHits) / 3.0
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	return dto.SentimentScoreDTO{
		ResponseID: answer.ResponseID,
		QuestionID: answer.QuestionID,
		Text:       truncateText(answer.AnswerValue, 100),
		Sentiment:  sentiment,
		Confidence: round2(confidence),
	}
}

func topByConfidence(scores []dto.SentimentScoreDTO, n int) []dto.SentimentScoreDTO {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Confidence > scores[j].Confidence
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	if scores == nil {
		scores = []dto.SentimentScoreDTO{}
	}
	return scores
}

// keyThemes extracts the ten most frequent tokens of five or more letters
// across every text answer in the form.
func keyThemes(answers []model.Answer) []string {
	var builder strings.Builder
	for _, answer := range answers {
		builder.WriteString(answer.AnswerValue)
		builder.WriteString(" ")
	}

	counts := topWords(countWords(tokenizeWords(builder.String(), 5), themeStopWords), 10)
	themes := make([]string, 0, len(counts))
	for _, wc := range counts {
		themes = append(themes, wc.Word)
	}
	return themes
}

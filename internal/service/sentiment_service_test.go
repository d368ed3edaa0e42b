package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/adil-123-dev/Insight-loop/internal/model"
)

func addTextQuestion(reader *fakeAnalyticsReader, id, formID uint) {
	reader.addQuestion(model.Question{ID: id, FormID: formID, QuestionType: model.QuestionTypeText})
}

func TestSentimentFormNotFound(t *testing.T) {
	svc := NewSentimentService(newFakeAnalyticsReader())

	_, err := svc.Sentiment(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSentimentNoData(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, Title: "CS101"})

	svc := NewSentimentService(reader)
	result, err := svc.Sentiment(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary.OverallSentiment != "no data" {
		t.Fatalf("expected overall 'no data', got %q", result.Summary.OverallSentiment)
	}
	if result.TopPositiveResponses == nil || result.TopNegativeResponses == nil || result.KeyThemes == nil {
		t.Fatal("empty result slices must be non-nil")
	}
}

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		sentiment  string
		confidence float64
	}{
		{"two positive hits", "This course was excellent and clear", SentimentPositive, 0.67},
		{"single negative hit", "The assignments were confusing", SentimentNegative, 0.33},
		{"no lexicon hits", "The course covered databases", SentimentNeutral, 0.5},
		{"tie stays neutral", "good but boring", SentimentNeutral, 0.5},
		{"confidence caps at one", "excellent amazing wonderful fantastic", SentimentPositive, 1.0},
		{"repeats count once", "great great great", SentimentPositive, 0.33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := classifySentiment(model.Answer{ResponseID: 1, QuestionID: 1, AnswerValue: tc.text})
			if score.Sentiment != tc.sentiment {
				t.Fatalf("expected %s, got %s", tc.sentiment, score.Sentiment)
			}
			if score.Confidence != tc.confidence {
				t.Fatalf("expected confidence %v, got %v", tc.confidence, score.Confidence)
			}
		})
	}
}

func TestClassifySentimentTruncatesText(t *testing.T) {
	long := strings.Repeat("excellent ", 30)
	score := classifySentiment(model.Answer{AnswerValue: long})
	if len(score.Text) != 103 || !strings.HasSuffix(score.Text, "...") {
		t.Fatalf("expected text truncated to 100 chars plus ellipsis, got %d chars", len(score.Text))
	}
}

func TestSentimentOverallRules(t *testing.T) {
	cases := []struct {
		name     string
		texts    []string
		expected string
	}{
		{
			name:     "mostly positive needs more than double",
			texts:    []string{"excellent", "great", "amazing", "terrible"},
			expected: "mostly positive",
		},
		{
			name:     "double exactly is still mixed",
			texts:    []string{"excellent", "great", "terrible"},
			expected: "mixed",
		},
		{
			name:     "mostly negative",
			texts:    []string{"terrible", "boring", "confusing", "great"},
			expected: "mostly negative",
		},
		{
			name:     "all neutral is mixed",
			texts:    []string{"the course covered sorting", "we studied graphs"},
			expected: "mixed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reader := newFakeAnalyticsReader()
			reader.addForm(model.Form{ID: 1, Title: "CS101"})
			addTextQuestion(reader, 10, 1)
			for i, text := range tc.texts {
				responseID := uint(100 + i)
				reader.addResponse(model.Response{ID: responseID, FormID: 1, SubmittedAt: mustDate("2024-03-01")})
				reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: responseID, QuestionID: 10, AnswerValue: text})
			}

			svc := NewSentimentService(reader)
			result, err := svc.Sentiment(1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Summary.OverallSentiment != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, result.Summary.OverallSentiment)
			}
		})
	}
}

func TestSentimentSummaryCounts(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, Title: "CS101"})
	addTextQuestion(reader, 10, 1)

	texts := []string{
		"excellent course",
		"great examples",
		"terrible pacing",
		"we covered recursion",
	}
	for i, text := range texts {
		responseID := uint(100 + i)
		reader.addResponse(model.Response{ID: responseID, FormID: 1, SubmittedAt: mustDate("2024-03-01")})
		reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: responseID, QuestionID: 10, AnswerValue: text})
	}

	svc := NewSentimentService(reader)
	result, err := svc.Sentiment(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary := result.Summary
	if summary.PositiveCount != 2 || summary.NegativeCount != 1 || summary.NeutralCount != 1 {
		t.Fatalf("expected 2/1/1 split, got %d/%d/%d", summary.PositiveCount, summary.NegativeCount, summary.NeutralCount)
	}
	if summary.PositivePercentage != 50 || summary.NegativePercentage != 25 || summary.NeutralPercentage != 25 {
		t.Fatalf("unexpected percentages: %v/%v/%v", summary.PositivePercentage, summary.NegativePercentage, summary.NeutralPercentage)
	}
	if result.TotalTextResponses != 4 {
		t.Fatalf("expected 4 text responses, got %d", result.TotalTextResponses)
	}
	if len(result.TopPositiveResponses) != 2 || len(result.TopNegativeResponses) != 1 {
		t.Fatalf("unexpected top lists: %d positive, %d negative",
			len(result.TopPositiveResponses), len(result.TopNegativeResponses))
	}
}

func TestSentimentTopResponsesCappedAtFive(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, Title: "CS101"})
	addTextQuestion(reader, 10, 1)

	for i := 0; i < 7; i++ {
		responseID := uint(100 + i)
		reader.addResponse(model.Response{ID: responseID, FormID: 1, SubmittedAt: mustDate("2024-03-01")})
		reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: responseID, QuestionID: 10, AnswerValue: "excellent lectures"})
	}

	svc := NewSentimentService(reader)
	result, err := svc.Sentiment(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.TopPositiveResponses) != 5 {
		t.Fatalf("expected top positives capped at 5, got %d", len(result.TopPositiveResponses))
	}
}

func TestSentimentKeyThemes(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, Title: "CS101"})
	addTextQuestion(reader, 10, 1)

	texts := []string{
		"lectures lectures assignments",
		"lectures and labs",
	}
	for i, text := range texts {
		responseID := uint(100 + i)
		reader.addResponse(model.Response{ID: responseID, FormID: 1, SubmittedAt: mustDate("2024-03-01")})
		reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: responseID, QuestionID: 10, AnswerValue: text})
	}

	svc := NewSentimentService(reader)
	result, err := svc.Sentiment(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Themes require five letters or more, so "labs" and "and" drop out.
	if len(result.KeyThemes) != 2 {
		t.Fatalf("expected 2 themes, got %v", result.KeyThemes)
	}
	if result.KeyThemes[0] != "lectures" || result.KeyThemes[1] != "assignments" {
		t.Fatalf("unexpected themes order: %v", result.KeyThemes)
	}
}

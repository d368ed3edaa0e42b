package service

import (
	"errors"
	"testing"

	"github.com/adil-123-dev/Insight-loop/internal/model"
)

func TestQuestionAnalyticsNotFound(t *testing.T) {
	svc := NewQuestionAnalyticsService(newFakeAnalyticsReader())

	_, err := svc.QuestionAnalytics(99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuestionAnalyticsNoAnswers(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addQuestion(model.Question{ID: 10, FormID: 1, QuestionText: "Rate the course", QuestionType: model.QuestionTypeRating})

	svc := NewQuestionAnalyticsService(reader)
	result, err := svc.QuestionAnalytics(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalResponses != 0 {
		t.Fatalf("expected 0 total responses, got %d", result.TotalResponses)
	}
	if result.RatingDistribution != nil || result.AverageRating != nil {
		t.Fatal("expected no distribution for an unanswered question")
	}
}

func TestQuestionAnalyticsRating(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addQuestion(model.Question{ID: 10, FormID: 1, QuestionText: "Rate the course", QuestionType: model.QuestionTypeRating})
	for i, value := range []string{"5", "5", "3", "x"} {
		reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: uint(100 + i), QuestionID: 10, AnswerValue: value})
	}

	svc := NewQuestionAnalyticsService(reader)
	result, err := svc.QuestionAnalytics(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalResponses != 4 {
		t.Fatalf("expected 4 total responses, got %d", result.TotalResponses)
	}
	// Percentages are taken over all four answers, the mean over the three
	// parseable ones.
	if result.AverageRating == nil || *result.AverageRating != 4.33 {
		t.Fatalf("expected average 4.33, got %v", result.AverageRating)
	}

	want := []struct {
		rating     int
		count      int
		percentage float64
	}{
		{3, 1, 25},
		{5, 2, 50},
	}
	if len(result.RatingDistribution) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(result.RatingDistribution))
	}
	for i, w := range want {
		got := result.RatingDistribution[i]
		if got.Rating != w.rating || got.Count != w.count || got.Percentage != w.percentage {
			t.Fatalf("bucket[%d]: expected %+v, got %+v", i, w, got)
		}
	}
}

func TestQuestionAnalyticsMCQ(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addQuestion(model.Question{
		ID: 10, FormID: 1, QuestionText: "Preferred format",
		QuestionType: model.QuestionTypeMCQ, Options: []string{"A", "B", "C"},
	})
	for i, value := range []string{"A", "B", "A", "A"} {
		reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: uint(100 + i), QuestionID: 10, AnswerValue: value})
	}

	svc := NewQuestionAnalyticsService(reader)
	result, err := svc.QuestionAnalytics(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.MCQDistribution) != 2 {
		t.Fatalf("expected 2 options, got %d", len(result.MCQDistribution))
	}
	top := result.MCQDistribution[0]
	if top.Option != "A" || top.Count != 3 || top.Percentage != 75 {
		t.Fatalf("unexpected top option: %+v", top)
	}
	if result.MostSelectedOption == nil || *result.MostSelectedOption != "A" {
		t.Fatalf("expected most selected A, got %v", result.MostSelectedOption)
	}
}

func TestQuestionAnalyticsYesNo(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addQuestion(model.Question{ID: 10, FormID: 1, QuestionText: "Would you recommend this course?", QuestionType: model.QuestionTypeYesNo})
	// Case-insensitive "yes"; anything else counts as no.
	for i, value := range []string{"yes", "Yes", "no", "maybe"} {
		reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: uint(100 + i), QuestionID: 10, AnswerValue: value})
	}

	svc := NewQuestionAnalyticsService(reader)
	result, err := svc.QuestionAnalytics(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dist := result.YesNoDistribution
	if dist == nil {
		t.Fatal("expected yes/no distribution")
	}
	if dist.YesCount != 2 || dist.NoCount != 2 {
		t.Fatalf("expected 2/2 split, got %d/%d", dist.YesCount, dist.NoCount)
	}
	if dist.YesPercentage != 50 || dist.NoPercentage != 50 {
		t.Fatalf("expected 50/50 percentages, got %v/%v", dist.YesPercentage, dist.NoPercentage)
	}
}

func TestQuestionAnalyticsText(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addQuestion(model.Question{ID: 10, FormID: 1, QuestionText: "Any comments?", QuestionType: model.QuestionTypeText})
	comments := []string{
		"The lectures were engaging and the examples helped a lot",
		"More examples please, the lectures moved fast",
		"Great lectures overall",
	}
	for i, value := range comments {
		reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: uint(100 + i), QuestionID: 10, AnswerValue: value})
	}

	svc := NewQuestionAnalyticsService(reader)
	result, err := svc.QuestionAnalytics(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.WordFrequencies) == 0 {
		t.Fatal("expected word frequencies")
	}
	if result.WordFrequencies[0].Word != "lectures" || result.WordFrequencies[0].Frequency != 3 {
		t.Fatalf("expected top word lectures x3, got %+v", result.WordFrequencies[0])
	}
	for _, wf := range result.WordFrequencies {
		if len(wf.Word) < 4 {
			t.Fatalf("word %q shorter than 4 letters should have been dropped", wf.Word)
		}
	}

	if len(result.SampleResponses) != len(comments) {
		t.Fatalf("expected %d samples, got %d", len(comments), len(result.SampleResponses))
	}
	if result.SampleResponses[0] != comments[0] {
		t.Fatalf("samples must preserve raw text, got %q", result.SampleResponses[0])
	}
}

func TestQuestionAnalyticsTextSampleCap(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addQuestion(model.Question{ID: 10, FormID: 1, QuestionType: model.QuestionTypeText})
	for i := 0; i < 8; i++ {
		reader.addAnswer(model.Answer{ID: uint(i + 1), ResponseID: uint(100 + i), QuestionID: 10, AnswerValue: "fine"})
	}

	svc := NewQuestionAnalyticsService(reader)
	result, err := svc.QuestionAnalytics(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.SampleResponses) != 5 {
		t.Fatalf("expected samples capped at 5, got %d", len(result.SampleResponses))
	}
}

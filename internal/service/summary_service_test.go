package service

import (
	"errors"
	"testing"

	"github.com/adil-123-dev/Insight-loop/internal/model"
)

func TestSummaryStatisticsFormNotFound(t *testing.T) {
	svc := NewSummaryService(newFakeAnalyticsReader())

	_, err := svc.SummaryStatistics(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryStatisticsNoResponses(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, OrgID: 1, Title: "CS101 Midterm Feedback"})
	svc := NewSummaryService(reader)

	summary, err := svc.SummaryStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalResponses != 0 {
		t.Fatalf("expected 0 responses, got %d", summary.TotalResponses)
	}
	if summary.AverageRating != nil {
		t.Fatalf("expected nil average rating, got %v", *summary.AverageRating)
	}
	if summary.FirstResponseDate != nil || summary.LastResponseDate != nil {
		t.Fatal("expected nil response dates")
	}
	if summary.ResponsesByDate == nil || len(summary.ResponsesByDate) != 0 {
		t.Fatalf("expected empty (non-nil) histogram, got %v", summary.ResponsesByDate)
	}
}

func TestSummaryStatisticsAggregates(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, OrgID: 7, Title: "CS101 Midterm Feedback"})
	reader.students[7] = 10

	reader.addQuestion(model.Question{ID: 10, FormID: 1, QuestionType: model.QuestionTypeRating, IsRequired: true, Order: 1})
	reader.addQuestion(model.Question{ID: 11, FormID: 1, QuestionType: model.QuestionTypeText, IsRequired: false, Order: 2})

	reader.addResponse(model.Response{ID: 100, FormID: 1, StudentID: 1, SubmittedAt: mustDate("2024-03-01")})
	reader.addResponse(model.Response{ID: 101, FormID: 1, StudentID: 2, IsAnonymous: true, SubmittedAt: mustDate("2024-03-01")})
	reader.addResponse(model.Response{ID: 102, FormID: 1, StudentID: 3, SubmittedAt: mustDate("2024-03-02")})

	reader.addAnswer(model.Answer{ID: 1, ResponseID: 100, QuestionID: 10, AnswerValue: "5"})
	reader.addAnswer(model.Answer{ID: 2, ResponseID: 101, QuestionID: 10, AnswerValue: "4"})
	// Response 102 answers only the optional text question, so it still counts
	// as complete against the single required question.
	reader.addAnswer(model.Answer{ID: 3, ResponseID: 102, QuestionID: 11, AnswerValue: "Loved the pacing"})

	svc := NewSummaryService(reader)
	summary, err := svc.SummaryStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalResponses != 3 {
		t.Fatalf("expected 3 responses, got %d", summary.TotalResponses)
	}
	if summary.AnonymousCount != 1 || summary.IdentifiedCount != 2 {
		t.Fatalf("expected 1 anonymous / 2 identified, got %d / %d", summary.AnonymousCount, summary.IdentifiedCount)
	}
	if summary.AverageRating == nil || *summary.AverageRating != 4.5 {
		t.Fatalf("expected average rating 4.5, got %v", summary.AverageRating)
	}
	if summary.CompletionRate != 100 {
		t.Fatalf("expected completion rate 100, got %v", summary.CompletionRate)
	}
	if summary.ResponseRate != 30 {
		t.Fatalf("expected response rate 30, got %v", summary.ResponseRate)
	}

	wantDates := []struct {
		date  string
		count int
	}{
		{"2024-03-01", 2},
		{"2024-03-02", 1},
	}
	if len(summary.ResponsesByDate) != len(wantDates) {
		t.Fatalf("expected %d histogram entries, got %d", len(wantDates), len(summary.ResponsesByDate))
	}
	for i, want := range wantDates {
		got := summary.ResponsesByDate[i]
		if got.Date != want.date || got.Count != want.count {
			t.Fatalf("histogram[%d]: expected %s=%d, got %s=%d", i, want.date, want.count, got.Date, got.Count)
		}
	}

	if summary.FirstResponseDate == nil || !summary.FirstResponseDate.Equal(mustDate("2024-03-01")) {
		t.Fatalf("unexpected first response date: %v", summary.FirstResponseDate)
	}
	if summary.LastResponseDate == nil || !summary.LastResponseDate.Equal(mustDate("2024-03-02")) {
		t.Fatalf("unexpected last response date: %v", summary.LastResponseDate)
	}
}

func TestSummaryStatisticsSkipsUnparseableRatings(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, OrgID: 1})
	reader.addQuestion(model.Question{ID: 10, FormID: 1, QuestionType: model.QuestionTypeRating, Order: 1})
	reader.addResponse(model.Response{ID: 100, FormID: 1, StudentID: 1, SubmittedAt: mustDate("2024-03-01")})
	reader.addAnswer(model.Answer{ID: 1, ResponseID: 100, QuestionID: 10, AnswerValue: "not a number"})

	svc := NewSummaryService(reader)
	summary, err := svc.SummaryStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.AverageRating != nil {
		t.Fatalf("expected nil average with no parseable ratings, got %v", *summary.AverageRating)
	}
}

func TestSummaryStatisticsResponseRateCappedAt100(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, OrgID: 7})
	reader.students[7] = 1

	reader.addResponse(model.Response{ID: 100, FormID: 1, StudentID: 1, SubmittedAt: mustDate("2024-03-01")})
	reader.addResponse(model.Response{ID: 101, FormID: 1, StudentID: 2, SubmittedAt: mustDate("2024-03-01")})

	svc := NewSummaryService(reader)
	summary, err := svc.SummaryStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ResponseRate != 100 {
		t.Fatalf("expected capped response rate 100, got %v", summary.ResponseRate)
	}
}

func TestSummaryStatisticsZeroStudentsZeroRate(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, OrgID: 7})
	reader.addResponse(model.Response{ID: 100, FormID: 1, StudentID: 1, SubmittedAt: mustDate("2024-03-01")})

	svc := NewSummaryService(reader)
	summary, err := svc.SummaryStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ResponseRate != 0 {
		t.Fatalf("expected response rate 0 with no students, got %v", summary.ResponseRate)
	}
}

func TestSummaryStatisticsIdempotent(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, OrgID: 7})
	reader.students[7] = 5
	reader.addResponse(model.Response{ID: 100, FormID: 1, StudentID: 1, SubmittedAt: mustDate("2024-03-01")})

	svc := NewSummaryService(reader)
	first, err := svc.SummaryStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SummaryStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TotalResponses != second.TotalResponses || first.ResponseRate != second.ResponseRate {
		t.Fatal("repeated calls over unchanged data must produce identical results")
	}
}

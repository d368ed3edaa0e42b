package service

import (
	"errors"
	"testing"

	"github.com/adil-123-dev/Insight-loop/internal/model"
)

func newReportService(reader *fakeAnalyticsReader) ReportService {
	return NewReportService(
		reader,
		NewSummaryService(reader),
		NewQuestionAnalyticsService(reader),
		NewTrendsService(reader),
		NewSentimentService(reader),
	)
}

func TestExportReportFormNotFound(t *testing.T) {
	svc := newReportService(newFakeAnalyticsReader())

	_, err := svc.ExportReport(42, "Dr. Chen")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExportReportEmptyForm(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, Title: "CS101 Midterm Feedback"})

	svc := newReportService(reader)
	report, err := svc.ExportReport(1, "Dr. Chen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Metadata.DateRange != "N/A" {
		t.Fatalf("expected date range N/A, got %q", report.Metadata.DateRange)
	}
	if report.Metadata.TotalResponses != 0 {
		t.Fatalf("expected 0 responses, got %d", report.Metadata.TotalResponses)
	}
	if report.Sentiment.Summary.OverallSentiment != "no data" {
		t.Fatalf("expected sentiment 'no data', got %q", report.Sentiment.Summary.OverallSentiment)
	}
}

func TestExportReportAssemblesAllSections(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, OrgID: 7, Title: "CS101 Midterm Feedback"})
	reader.students[7] = 10

	reader.addQuestion(model.Question{ID: 10, FormID: 1, QuestionText: "Rate the course", QuestionType: model.QuestionTypeRating, Order: 1})
	reader.addQuestion(model.Question{ID: 11, FormID: 1, QuestionText: "Comments", QuestionType: model.QuestionTypeText, Order: 2})

	reader.addResponse(model.Response{ID: 100, FormID: 1, StudentID: 1, SubmittedAt: mustDate("2024-03-01")})
	reader.addResponse(model.Response{ID: 101, FormID: 1, StudentID: 2, SubmittedAt: mustDate("2024-03-03")})

	reader.addAnswer(model.Answer{ID: 1, ResponseID: 100, QuestionID: 10, AnswerValue: "5"})
	reader.addAnswer(model.Answer{ID: 2, ResponseID: 100, QuestionID: 11, AnswerValue: "excellent lectures"})
	reader.addAnswer(model.Answer{ID: 3, ResponseID: 101, QuestionID: 10, AnswerValue: "4"})

	svc := newReportService(reader)
	report, err := svc.ExportReport(1, "Dr. Chen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta := report.Metadata
	if meta.ReportID == "" {
		t.Fatal("expected a generated report id")
	}
	if meta.FormID != 1 || meta.FormTitle != "CS101 Midterm Feedback" {
		t.Fatalf("unexpected metadata form: %d %q", meta.FormID, meta.FormTitle)
	}
	if meta.GeneratedBy != "Dr. Chen" {
		t.Fatalf("unexpected generated_by: %q", meta.GeneratedBy)
	}
	if meta.TotalResponses != 2 {
		t.Fatalf("expected 2 responses in metadata, got %d", meta.TotalResponses)
	}
	if meta.DateRange != "2024-03-01 to 2024-03-03" {
		t.Fatalf("unexpected date range: %q", meta.DateRange)
	}

	if report.Summary.TotalResponses != 2 {
		t.Fatalf("expected summary section with 2 responses, got %d", report.Summary.TotalResponses)
	}

	// One analytics entry per question, in position order.
	if len(report.QuestionAnalytics) != 2 {
		t.Fatalf("expected 2 question sections, got %d", len(report.QuestionAnalytics))
	}
	if report.QuestionAnalytics[0].QuestionID != 10 || report.QuestionAnalytics[1].QuestionID != 11 {
		t.Fatalf("question sections out of order: %d, %d",
			report.QuestionAnalytics[0].QuestionID, report.QuestionAnalytics[1].QuestionID)
	}

	if report.Trends.Period != PeriodDaily {
		t.Fatalf("exports must use daily trends, got %q", report.Trends.Period)
	}
	if len(report.Trends.ResponseTrend) != 2 {
		t.Fatalf("expected 2 trend points, got %d", len(report.Trends.ResponseTrend))
	}

	if report.Sentiment.TotalTextResponses != 1 {
		t.Fatalf("expected 1 text response in sentiment, got %d", report.Sentiment.TotalTextResponses)
	}
	if report.Sentiment.Summary.PositiveCount != 1 {
		t.Fatalf("expected 1 positive response, got %d", report.Sentiment.Summary.PositiveCount)
	}
}

func TestExportReportDistinctReportIDs(t *testing.T) {
	reader := newFakeAnalyticsReader()
	reader.addForm(model.Form{ID: 1, Title: "CS101"})

	svc := newReportService(reader)
	first, err := svc.ExportReport(1, "Dr. Chen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ExportReport(1, "Dr. Chen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Metadata.ReportID == second.Metadata.ReportID {
		t.Fatal("each export must get its own report id")
	}
}

package dto

import "time"

// --- Summary analytics ---

// ResponsesByDateDTO is one entry of the per-day response histogram.
type ResponsesByDateDTO struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type SummaryStatisticsDTO struct {
	TotalResponses  int      `json:"total_responses"`
	AnonymousCount  int      `json:"anonymous_count"`
	IdentifiedCount int      `json:"identified_count"`
	AverageRating   *float64 `json:"average_rating,omitempty"`

	// CompletionRate counts a response as complete when its answer count is at
	// least the form's required-question count. This does not verify that the
	// required questions themselves were the ones answered; it is a documented
	// approximation.
	CompletionRate float64 `json:"completion_rate"`

	// ResponseRate is total responses over the organization's student count,
	// capped at 100. Zero when the organization has no students.
	ResponseRate float64 `json:"response_rate"`

	FirstResponseDate *time.Time           `json:"first_response_date,omitempty"`
	LastResponseDate  *time.Time           `json:"last_response_date,omitempty"`
	ResponsesByDate   []ResponsesByDateDTO `json:"responses_by_date"`
}

// --- Question analytics ---

type RatingBucketDTO struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type OptionBucketDTO struct {
	Option     string  `json:"option"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type YesNoDistributionDTO struct {
	YesCount      int     `json:"yes_count"`
	NoCount       int     `json:"no_count"`
	YesPercentage float64 `json:"yes_percentage"`
	NoPercentage  float64 `json:"no_percentage"`
}

type WordFrequencyDTO struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

type QuestionAnalyticsDTO struct {
	QuestionID     uint   `json:"question_id"`
	QuestionText   string `json:"question_text"`
	QuestionType   string `json:"question_type"`
	TotalResponses int    `json:"total_responses"`

	RatingDistribution []RatingBucketDTO `json:"rating_distribution,omitempty"`
	AverageRating      *float64          `json:"average_rating,omitempty"`

	MCQDistribution    []OptionBucketDTO `json:"mcq_distribution,omitempty"`
	MostSelectedOption *string           `json:"most_selected_option,omitempty"`

	YesNoDistribution *YesNoDistributionDTO `json:"yes_no_distribution,omitempty"`

	WordFrequencies []WordFrequencyDTO `json:"word_frequencies,omitempty"`
	SampleResponses []string           `json:"sample_responses,omitempty"`
}

// --- Trends analytics ---

type TrendPointDTO struct {
	Date  string  `json:"date"` // bucket key, YYYY-MM-DD
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

type TrendsAnalyticsDTO struct {
	FormID    uint   `json:"form_id"`
	FormTitle string `json:"form_title"`
	Period    string `json:"period"` // "daily" or "weekly"

	ResponseTrend []TrendPointDTO `json:"response_trend"`
	RatingTrend   []TrendPointDTO `json:"rating_trend,omitempty"`

	PeakResponseDate  *string `json:"peak_response_date,omitempty"`
	PeakResponseCount *int    `json:"peak_response_count,omitempty"`
}

// --- Sentiment analytics ---

type SentimentScoreDTO struct {
	ResponseID uint    `json:"response_id"`
	QuestionID uint    `json:"question_id"`
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"` // "positive", "negative", "neutral"
	Confidence float64 `json:"confidence"`
}

type SentimentSummaryDTO struct {
	PositiveCount int `json:"positive_count"`
	NegativeCount int `json:"negative_count"`
	NeutralCount  int `json:"neutral_count"`

	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`

	OverallSentiment string `json:"overall_sentiment"` // "mostly positive", "mostly negative", "mixed", "no data"
}

type SentimentAnalyticsDTO struct {
	FormID             uint                `json:"form_id"`
	FormTitle          string              `json:"form_title"`
	TotalTextResponses int                 `json:"total_text_responses"`
	Summary            SentimentSummaryDTO `json:"summary"`

	TopPositiveResponses []SentimentScoreDTO `json:"top_positive_responses"`
	TopNegativeResponses []SentimentScoreDTO `json:"top_negative_responses"`
	KeyThemes            []string            `json:"key_themes"`
}

// --- Export report ---

type ReportMetadataDTO struct {
	ReportID       string    `json:"report_id"`
	FormID         uint      `json:"form_id"`
	FormTitle      string    `json:"form_title"`
	GeneratedAt    time.Time `json:"generated_at"`
	GeneratedBy    string    `json:"generated_by"`
	TotalResponses int       `json:"total_responses"`
	DateRange      string    `json:"date_range"` // "YYYY-MM-DD to YYYY-MM-DD" or "N/A"
}

type ExportReportDTO struct {
	Metadata          ReportMetadataDTO      `json:"metadata"`
	Summary           SummaryStatisticsDTO   `json:"summary"`
	QuestionAnalytics []QuestionAnalyticsDTO `json:"question_analytics"`
	Trends            TrendsAnalyticsDTO     `json:"trends"`
	Sentiment         SentimentAnalyticsDTO  `json:"sentiment"`
}

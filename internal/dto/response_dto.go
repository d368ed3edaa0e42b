package dto

import "time"

type AnswerSubmitDTO struct {
	QuestionID  uint   `json:"question_id" binding:"required"`
	AnswerValue string `json:"answer_value" binding:"required"`
}

type ResponseSubmitDTO struct {
	IsAnonymous bool              `json:"is_anonymous"`
	Answers     []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

type ResponseSubmittedDTO struct {
	ID          uint      `json:"id"`
	FormID      uint      `json:"form_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Message     string    `json:"message"`
}

type ResponseSummaryDTO struct {
	ID          uint      `json:"id"`
	FormID      uint      `json:"form_id"`
	StudentID   *uint     `json:"student_id,omitempty"` // hidden for anonymous responses
	IsAnonymous bool      `json:"is_anonymous"`
	SubmittedAt time.Time `json:"submitted_at"`
	AnswerCount int       `json:"answer_count"`
}

type AnswerDetailDTO struct {
	QuestionID   uint   `json:"question_id"`
	QuestionText string `json:"question_text"`
	QuestionType string `json:"question_type"`
	AnswerValue  string `json:"answer_value"`
}

type ResponseDetailDTO struct {
	ID          uint              `json:"id"`
	FormID      uint              `json:"form_id"`
	StudentID   *uint             `json:"student_id,omitempty"`
	IsAnonymous bool              `json:"is_anonymous"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Answers     []AnswerDetailDTO `json:"answers"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

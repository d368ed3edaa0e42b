package dto

import "time"

type FormCreateDTO struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	CourseName  string     `json:"course_name" binding:"required"`
	CourseCode  string     `json:"course_code" binding:"required"`
	CategoryID  *uint      `json:"category_id"`
	OpenDate    *time.Time `json:"open_date"`
	CloseDate   *time.Time `json:"close_date"`
}

type FormUpdateDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	CourseName  *string    `json:"course_name"`
	CourseCode  *string    `json:"course_code"`
	CategoryID  *uint      `json:"category_id"`
	OpenDate    *time.Time `json:"open_date"`
	CloseDate   *time.Time `json:"close_date"`
}

type FormStatusUpdateDTO struct {
	Status string `json:"status" binding:"required,oneof=draft published closed"`
}

type FormResponseDTO struct {
	ID           uint                  `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	CourseName   string                `json:"course_name"`
	CourseCode   string                `json:"course_code"`
	InstructorID uint                  `json:"instructor_id"`
	OrgID        uint                  `json:"org_id"`
	CategoryID   *uint                 `json:"category_id,omitempty"`
	Status       string                `json:"status"`
	OpenDate     *time.Time            `json:"open_date,omitempty"`
	CloseDate    *time.Time            `json:"close_date,omitempty"`
	Questions    []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

type FormSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	CourseName    string    `json:"course_name"`
	CourseCode    string    `json:"course_code"`
	Status        string    `json:"status"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

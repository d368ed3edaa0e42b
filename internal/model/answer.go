package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer stores the submitted value as a free string regardless of the
// question's declared type. Aggregation code treats unparseable numeric
// values as excluded, never as errors.
type Answer struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ResponseID  uint           `json:"response_id" gorm:"not null;index"`
	QuestionID  uint           `json:"question_id" gorm:"not null;index"`
	Question    Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerValue string         `json:"answer_value" gorm:"type:text;not null"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

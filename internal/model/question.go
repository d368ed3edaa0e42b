package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeRating = "rating"
	QuestionTypeText   = "text"
	QuestionTypeMCQ    = "mcq"
	QuestionTypeYesNo  = "yes_no"
)

type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	FormID       uint           `json:"form_id" gorm:"not null;index"`
	QuestionText string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType string         `json:"question_type" gorm:"not null"` // "rating", "text", "mcq", "yes_no"
	IsRequired   bool           `json:"is_required" gorm:"not null;default:false"`
	Order        int            `json:"order" gorm:"column:position;not null"` // 1-based position within the form
	Options      []string       `json:"options,omitempty" gorm:"serializer:json"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

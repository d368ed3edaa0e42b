package model

import (
	"time"

	"gorm.io/gorm"
)

// Response is one student's full submission to a form. The submission path
// enforces at most one Response per (form, student) pair.
type Response struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	FormID      uint           `json:"form_id" gorm:"not null;index"`
	StudentID   uint           `json:"student_id" gorm:"not null;index"`
	IsAnonymous bool           `json:"is_anonymous" gorm:"not null;default:false"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

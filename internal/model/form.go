package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	FormStatusDraft     = "draft"
	FormStatusPublished = "published"
	FormStatusClosed    = "closed"
)

// Form is a feedback questionnaire owned by an instructor. It starts as a
// draft, accepts responses while published, and rejects new ones once closed.
type Form struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	CourseName   string         `json:"course_name" gorm:"not null"`
	CourseCode   string         `json:"course_code" gorm:"not null"`
	InstructorID uint           `json:"instructor_id" gorm:"not null;index"`
	OrgID        uint           `json:"org_id" gorm:"not null;index"`
	CategoryID   *uint          `json:"category_id,omitempty" gorm:"index"`
	Status       string         `json:"status" gorm:"not null;default:'draft'"` // "draft", "published", "closed"
	OpenDate     *time.Time     `json:"open_date,omitempty"`
	CloseDate    *time.Time     `json:"close_date,omitempty"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Responses    []Response     `json:"responses,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

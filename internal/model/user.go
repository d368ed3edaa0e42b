package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Email          string         `json:"email" gorm:"not null;uniqueIndex"`
	HashedPassword string         `json:"-" gorm:"not null"`
	FullName       string         `json:"full_name"`
	OrgID          uint           `json:"org_id" gorm:"not null;index"`
	Role           string         `json:"role" gorm:"not null;default:'student'"` // "student", "instructor", "admin"
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

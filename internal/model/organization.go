package model

import (
	"time"

	"gorm.io/gorm"
)

type Organization struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Subdomain   string         `json:"subdomain" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	Users       []User         `json:"users,omitempty" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
	Forms       []Form         `json:"forms,omitempty" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
	Categories  []Category     `json:"categories,omitempty" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

package dto

import "time"

type OrganizationCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Subdomain   string `json:"subdomain" binding:"required,alphanum,lowercase"`
	Description string `json:"description"`
}

type OrganizationResponseDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Subdomain   string    `json:"subdomain"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryResponseDTO struct {
	ID          uint      `json:"id"`
	OrgID       uint      `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

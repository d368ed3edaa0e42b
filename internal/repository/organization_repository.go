package repository

import (
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(org *model.Organization) error
	FindByID(id uint) (*model.Organization, error)
	FindBySubdomain(subdomain string) (*model.Organization, error)
	FindAll() ([]model.Organization, error)
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(org *model.Organization) error {
	return r.db.Create(org).Error
}

func (r *organizationRepository) FindByID(id uint) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) FindBySubdomain(subdomain string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.Where("subdomain = ?", subdomain).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) FindAll() ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.Order("created_at desc").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

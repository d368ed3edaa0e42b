package service

import (
	"errors"
	"fmt"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type OrganizationService interface {
	CreateOrganization(req dto.OrganizationCreateDTO) (*dto.OrganizationResponseDTO, error)
	GetOrganization(id uint) (*dto.OrganizationResponseDTO, error)
	ListOrganizations() ([]dto.OrganizationResponseDTO, error)
	ListUsers(orgID uint) ([]dto.UserResponseDTO, error)
}

type organizationService struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

func NewOrganizationService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo, userRepo: userRepo}
}

func (s *organizationService) CreateOrganization(req dto.OrganizationCreateDTO) (*dto.OrganizationResponseDTO, error) {
	if _, err := s.orgRepo.FindBySubdomain(req.Subdomain); err == nil {
		return nil, fmt.Errorf("subdomain %q already taken: %w", req.Subdomain, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking subdomain: %w", err)
	}

	org := model.Organization{
		Name:        req.Name,
		Subdomain:   req.Subdomain,
		Description: req.Description,
	}
	if err := s.orgRepo.Create(&org); err != nil {
		log.Error().Err(err).Str("subdomain", req.Subdomain).Msg("Failed to create organization")
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	var resp dto.OrganizationResponseDTO
	copier.Copy(&resp, &org)
	return &resp, nil
}

func (s *organizationService) GetOrganization(id uint) (*dto.OrganizationResponseDTO, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("organization %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching organization: %w", err)
	}

	var resp dto.OrganizationResponseDTO
	copier.Copy(&resp, org)
	return &resp, nil
}

func (s *organizationService) ListOrganizations() ([]dto.OrganizationResponseDTO, error) {
	orgs, err := s.orgRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	dtos := make([]dto.OrganizationResponseDTO, 0, len(orgs))
	for _, org := range orgs {
		var resp dto.OrganizationResponseDTO
		copier.Copy(&resp, &org)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *organizationService) ListUsers(orgID uint) ([]dto.UserResponseDTO, error) {
	users, err := s.userRepo.FindByOrg(orgID)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	dtos := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		var resp dto.UserResponseDTO
		copier.Copy(&resp, &user)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

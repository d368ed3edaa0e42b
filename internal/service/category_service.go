package service

import (
	"errors"
	"fmt"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(orgID uint, req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error)
	ListCategories(orgID uint) ([]dto.CategoryResponseDTO, error)
	UpdateCategory(orgID, categoryID uint, req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error)
	DeleteCategory(orgID, categoryID uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(orgID uint, req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error) {
	category := model.Category{
		OrgID:       orgID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(&category); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	var resp dto.CategoryResponseDTO
	copier.Copy(&resp, &category)
	return &resp, nil
}

func (s *categoryService) ListCategories(orgID uint) ([]dto.CategoryResponseDTO, error) {
	categories, err := s.categoryRepo.FindByOrg(orgID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	dtos := make([]dto.CategoryResponseDTO, 0, len(categories))
	for _, category := range categories {
		var resp dto.CategoryResponseDTO
		copier.Copy(&resp, &category)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *categoryService) UpdateCategory(orgID, categoryID uint, req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error) {
	category, err := s.findOwned(orgID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	var resp dto.CategoryResponseDTO
	copier.Copy(&resp, category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(orgID, categoryID uint) error {
	if _, err := s.findOwned(orgID, categoryID); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(categoryID); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

func (s *categoryService) findOwned(orgID, categoryID uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching category: %w", err)
	}
	if category.OrgID != orgID {
		return nil, fmt.Errorf("category belongs to another organization: %w", ErrForbidden)
	}
	return category, nil
}

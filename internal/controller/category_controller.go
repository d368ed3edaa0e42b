package controller

import (
	"net/http"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/middleware"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categorySvc service.CategoryService
}

func NewCategoryController(categorySvc service.CategoryService) *CategoryController {
	return &CategoryController{categorySvc: categorySvc}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body dto.CategoryCreateDTO true "Category data"
// @Success 201 {object} dto.CategoryResponseDTO
// @Router /categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := ctrl.categorySvc.CreateCategory(middleware.GetActor(c).OrgID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// ListCategories godoc
// @Summary List categories of the caller's organization
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CategoryResponseDTO
// @Router /categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categorySvc.ListCategories(middleware.GetActor(c).OrgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category_id path int true "Category ID"
// @Param category body dto.CategoryCreateDTO true "Category data"
// @Success 200 {object} dto.CategoryResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{category_id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}

	var req dto.CategoryCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := ctrl.categorySvc.UpdateCategory(middleware.GetActor(c).OrgID, categoryID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Security BearerAuth
// @Param category_id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{category_id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}

	if err := ctrl.categorySvc.DeleteCategory(middleware.GetActor(c).OrgID, categoryID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

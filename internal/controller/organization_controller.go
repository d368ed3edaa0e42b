package controller

import (
	"net/http"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/middleware"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-gonic/gin"
)

type OrganizationController struct {
	orgSvc service.OrganizationService
}

func NewOrganizationController(orgSvc service.OrganizationService) *OrganizationController {
	return &OrganizationController{orgSvc: orgSvc}
}

// CreateOrganization godoc
// @Summary Create an organization
// @Description Public endpoint used during tenant onboarding
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.OrganizationCreateDTO true "Organization data"
// @Success 201 {object} dto.OrganizationResponseDTO
// @Failure 409 {object} dto.ErrorResponse "Subdomain already taken"
// @Router /organizations [post]
func (ctrl *OrganizationController) CreateOrganization(c *gin.Context) {
	var req dto.OrganizationCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	org, err := ctrl.orgSvc.CreateOrganization(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

// ListOrganizations godoc
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} dto.OrganizationResponseDTO
// @Router /organizations [get]
func (ctrl *OrganizationController) ListOrganizations(c *gin.Context) {
	orgs, err := ctrl.orgSvc.ListOrganizations()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// GetOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param org_id path int true "Organization ID"
// @Success 200 {object} dto.OrganizationResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /organizations/{org_id} [get]
func (ctrl *OrganizationController) GetOrganization(c *gin.Context) {
	orgID, ok := parseIDParam(c, "org_id")
	if !ok {
		return
	}

	org, err := ctrl.orgSvc.GetOrganization(orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// ListUsers godoc
// @Summary List users of the caller's organization
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /users [get]
func (ctrl *OrganizationController) ListUsers(c *gin.Context) {
	actor := middleware.GetActor(c)
	users, err := ctrl.orgSvc.ListUsers(actor.OrgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

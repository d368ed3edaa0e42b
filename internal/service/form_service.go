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

type FormService interface {
	CreateForm(actor Actor, req dto.FormCreateDTO) (*dto.FormResponseDTO, error)
	ListForms(actor Actor) ([]dto.FormSummaryDTO, error)
	GetForm(actor Actor, formID uint) (*dto.FormResponseDTO, error)
	UpdateForm(actor Actor, formID uint, req dto.FormUpdateDTO) (*dto.FormResponseDTO, error)
	DeleteForm(actor Actor, formID uint) error
	UpdateFormStatus(actor Actor, formID uint, status string) (*dto.FormResponseDTO, error)

	// AuthorizeFormAccess loads the form and verifies the actor may view its
	// responses and analytics (owner or admin, same organization).
	AuthorizeFormAccess(actor Actor, formID uint) (*model.Form, error)
}

type formService struct {
	formRepo repository.FormRepository
}

func NewFormService(formRepo repository.FormRepository) FormService {
	return &formService{formRepo: formRepo}
}

func (s *formService) CreateForm(actor Actor, req dto.FormCreateDTO) (*dto.FormResponseDTO, error) {
	if req.OpenDate != nil && req.CloseDate != nil && req.CloseDate.Before(*req.OpenDate) {
		return nil, fmt.Errorf("close date is before open date: %w", ErrValidation)
	}

	form := model.Form{
		Title:        req.Title,
		Description:  req.Description,
		CourseName:   req.CourseName,
		CourseCode:   req.CourseCode,
		InstructorID: actor.UserID,
		OrgID:        actor.OrgID,
		CategoryID:   req.CategoryID,
		Status:       model.FormStatusDraft,
		OpenDate:     req.OpenDate,
		CloseDate:    req.CloseDate,
	}
	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create form")
		return nil, fmt.Errorf("creating form: %w", err)
	}

	var resp dto.FormResponseDTO
	copier.Copy(&resp, &form)
	return &resp, nil
}

func (s *formService) ListForms(actor Actor) ([]dto.FormSummaryDTO, error) {
	var (
		formsWithCount []struct {
			model.Form
			QuestionCount int
		}
		err error
	)
	switch {
	case actor.IsAdmin():
		formsWithCount, err = s.formRepo.FindAllWithQuestionCount(actor.OrgID)
	case actor.Role == model.RoleInstructor:
		// Instructors list the forms they teach, not the whole organization.
		formsWithCount, err = s.formRepo.FindByInstructorWithQuestionCount(actor.OrgID, actor.UserID)
	default:
		// Students only see published forms.
		var published []model.Form
		published, err = s.formRepo.FindByOrgAndStatus(actor.OrgID, model.FormStatusPublished)
		for _, form := range published {
			formsWithCount = append(formsWithCount, struct {
				model.Form
				QuestionCount int
			}{Form: form})
		}
	}
	if err != nil {
		return nil, fmt.Errorf("listing forms: %w", err)
	}

	dtos := make([]dto.FormSummaryDTO, 0, len(formsWithCount))
	for _, fwc := range formsWithCount {
		dtos = append(dtos, dto.FormSummaryDTO{
			ID:            fwc.Form.ID,
			Title:         fwc.Form.Title,
			CourseName:    fwc.Form.CourseName,
			CourseCode:    fwc.Form.CourseCode,
			Status:        fwc.Form.Status,
			QuestionCount: fwc.QuestionCount,
			CreatedAt:     fwc.Form.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *formService) GetForm(actor Actor, formID uint) (*dto.FormResponseDTO, error) {
	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching form: %w", err)
	}

	if form.OrgID != actor.OrgID {
		return nil, fmt.Errorf("form belongs to another organization: %w", ErrForbidden)
	}
	if !actor.IsInstructor() && form.Status != model.FormStatusPublished {
		return nil, fmt.Errorf("form is not published: %w", ErrForbidden)
	}
	// Instructors only see their own forms; admins see the whole organization.
	if actor.Role == model.RoleInstructor && form.InstructorID != actor.UserID {
		return nil, fmt.Errorf("forms are visible to their owner only: %w", ErrForbidden)
	}

	var resp dto.FormResponseDTO
	copier.Copy(&resp, form)
	return &resp, nil
}

func (s *formService) UpdateForm(actor Actor, formID uint, req dto.FormUpdateDTO) (*dto.FormResponseDTO, error) {
	form, err := s.findOwned(actor, formID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = *req.Description
	}
	if req.CourseName != nil {
		form.CourseName = *req.CourseName
	}
	if req.CourseCode != nil {
		form.CourseCode = *req.CourseCode
	}
	if req.CategoryID != nil {
		form.CategoryID = req.CategoryID
	}
	if req.OpenDate != nil {
		form.OpenDate = req.OpenDate
	}
	if req.CloseDate != nil {
		form.CloseDate = req.CloseDate
	}

	if err := s.formRepo.Update(form); err != nil {
		return nil, fmt.Errorf("updating form: %w", err)
	}

	var resp dto.FormResponseDTO
	copier.Copy(&resp, form)
	return &resp, nil
}

func (s *formService) DeleteForm(actor Actor, formID uint) error {
	if _, err := s.findOwned(actor, formID); err != nil {
		return err
	}
	if err := s.formRepo.Delete(formID); err != nil {
		return fmt.Errorf("deleting form: %w", err)
	}
	log.Info().Uint("form_id", formID).Uint("user_id", actor.UserID).Msg("Form deleted")
	return nil
}

// UpdateFormStatus enforces the draft → published → closed lifecycle.
func (s *formService) UpdateFormStatus(actor Actor, formID uint, status string) (*dto.FormResponseDTO, error) {
	form, err := s.findOwned(actor, formID)
	if err != nil {
		return nil, err
	}

	valid := map[string][]string{
		model.FormStatusDraft:     {model.FormStatusPublished},
		model.FormStatusPublished: {model.FormStatusClosed},
		model.FormStatusClosed:    {},
	}
	allowed := false
	for _, next := range valid[form.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition form from %q to %q: %w", form.Status, status, ErrValidation)
	}

	form.Status = status
	if err := s.formRepo.Update(form); err != nil {
		return nil, fmt.Errorf("updating form status: %w", err)
	}

	log.Info().Uint("form_id", formID).Str("status", status).Msg("Form status changed")
	var resp dto.FormResponseDTO
	copier.Copy(&resp, form)
	return &resp, nil
}

func (s *formService) AuthorizeFormAccess(actor Actor, formID uint) (*model.Form, error) {
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching form: %w", err)
	}
	if form.OrgID != actor.OrgID {
		return nil, fmt.Errorf("form belongs to another organization: %w", ErrForbidden)
	}
	if !actor.IsAdmin() && form.InstructorID != actor.UserID {
		return nil, fmt.Errorf("only the form owner may view this: %w", ErrForbidden)
	}
	return form, nil
}

func (s *formService) findOwned(actor Actor, formID uint) (*model.Form, error) {
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching form: %w", err)
	}
	if form.OrgID != actor.OrgID {
		return nil, fmt.Errorf("form belongs to another organization: %w", ErrForbidden)
	}
	if !actor.IsAdmin() && form.InstructorID != actor.UserID {
		return nil, fmt.Errorf("only the form owner may modify it: %w", ErrForbidden)
	}
	return form, nil
}

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

type QuestionService interface {
	AddQuestion(actor Actor, formID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	ListQuestions(actor Actor, formID uint) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(actor Actor, questionID uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(actor Actor, questionID uint) error
	ReorderQuestions(actor Actor, formID uint, questionIDs []uint) ([]dto.QuestionResponseDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	formSvc      FormService
}

func NewQuestionService(questionRepo repository.QuestionRepository, formSvc FormService) QuestionService {
	return &questionService{questionRepo: questionRepo, formSvc: formSvc}
}

func (s *questionService) AddQuestion(actor Actor, formID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.formSvc.AuthorizeFormAccess(actor, formID); err != nil {
		return nil, err
	}
	if req.QuestionType == model.QuestionTypeMCQ && len(req.Options) == 0 {
		return nil, fmt.Errorf("multiple choice questions must have options: %w", ErrValidation)
	}

	count, err := s.questionRepo.CountByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("counting questions: %w", err)
	}

	question := model.Question{
		FormID:       formID,
		QuestionText: req.QuestionText,
		QuestionType: req.QuestionType,
		IsRequired:   req.IsRequired,
		Order:        int(count) + 1,
		Options:      req.Options,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, fmt.Errorf("creating question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) ListQuestions(actor Actor, formID uint) ([]dto.QuestionResponseDTO, error) {
	// Listing is allowed for any member of the form's organization; access
	// rules for students mirror form visibility.
	if _, err := s.formSvc.GetForm(actor, formID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.FindByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}

	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, question := range questions {
		var resp dto.QuestionResponseDTO
		copier.Copy(&resp, &question)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *questionService) UpdateQuestion(actor Actor, questionID uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.findEditable(actor, questionID)
	if err != nil {
		return nil, err
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.QuestionType != nil {
		question.QuestionType = *req.QuestionType
	}
	if req.IsRequired != nil {
		question.IsRequired = *req.IsRequired
	}
	if req.Options != nil {
		question.Options = req.Options
	}
	if question.QuestionType == model.QuestionTypeMCQ && len(question.Options) == 0 {
		return nil, fmt.Errorf("multiple choice questions must have options: %w", ErrValidation)
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("updating question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

// DeleteQuestion removes the question and closes the position gap so orders
// stay contiguous and 1-based.
func (s *questionService) DeleteQuestion(actor Actor, questionID uint) error {
	question, err := s.findEditable(actor, questionID)
	if err != nil {
		return err
	}

	if err := s.questionRepo.Delete(questionID); err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}

	remaining, err := s.questionRepo.FindByForm(question.FormID)
	if err != nil {
		return fmt.Errorf("reloading questions: %w", err)
	}
	for i, q := range remaining {
		if q.Order != i+1 {
			if err := s.questionRepo.UpdateOrder(q.ID, i+1); err != nil {
				return fmt.Errorf("reordering question %d: %w", q.ID, err)
			}
		}
	}
	return nil
}

func (s *questionService) ReorderQuestions(actor Actor, formID uint, questionIDs []uint) ([]dto.QuestionResponseDTO, error) {
	if _, err := s.formSvc.AuthorizeFormAccess(actor, formID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.FindByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	if len(questionIDs) != len(questions) {
		return nil, fmt.Errorf("reorder must include all %d questions: %w", len(questions), ErrValidation)
	}

	known := make(map[uint]bool, len(questions))
	for _, question := range questions {
		known[question.ID] = true
	}
	for _, id := range questionIDs {
		if !known[id] {
			return nil, fmt.Errorf("question %d does not belong to form %d: %w", id, formID, ErrValidation)
		}
		delete(known, id)
	}

	for i, id := range questionIDs {
		if err := s.questionRepo.UpdateOrder(id, i+1); err != nil {
			return nil, fmt.Errorf("reordering question %d: %w", id, err)
		}
	}

	reordered, err := s.questionRepo.FindByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("reloading questions: %w", err)
	}
	dtos := make([]dto.QuestionResponseDTO, 0, len(reordered))
	for _, question := range reordered {
		var resp dto.QuestionResponseDTO
		copier.Copy(&resp, &question)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *questionService) findEditable(actor Actor, questionID uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching question: %w", err)
	}
	if _, err := s.formSvc.AuthorizeFormAccess(actor, question.FormID); err != nil {
		return nil, err
	}
	return question, nil
}

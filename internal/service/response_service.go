package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ResponseService interface {
	SubmitResponse(actor Actor, formID uint, req dto.ResponseSubmitDTO) (*dto.ResponseSubmittedDTO, error)
	ListResponses(actor Actor, formID uint) ([]dto.ResponseSummaryDTO, error)
	GetResponse(actor Actor, responseID uint) (*dto.ResponseDetailDTO, error)
	ExportResponsesCSV(actor Actor, formID uint) (filename string, data []byte, err error)
}

type responseService struct {
	responseRepo repository.ResponseRepository
	questionRepo repository.QuestionRepository
	formSvc      FormService
	reader       repository.AnalyticsReader
}

func NewResponseService(
	responseRepo repository.ResponseRepository,
	questionRepo repository.QuestionRepository,
	formSvc FormService,
	reader repository.AnalyticsReader,
) ResponseService {
	return &responseService{
		responseRepo: responseRepo,
		questionRepo: questionRepo,
		formSvc:      formSvc,
		reader:       reader,
	}
}

func (s *responseService) SubmitResponse(actor Actor, formID uint, req dto.ResponseSubmitDTO) (*dto.ResponseSubmittedDTO, error) {
	form, err := s.loadOpenForm(actor, formID)
	if err != nil {
		return nil, err
	}

	// One response per (form, student).
	if _, err := s.responseRepo.FindByFormAndStudent(formID, actor.UserID); err == nil {
		return nil, fmt.Errorf("feedback already submitted for this form: %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing response: %w", err)
	}

	questions, err := s.questionRepo.FindByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}
	questionSet := make(map[uint]bool, len(questions))
	for _, question := range questions {
		questionSet[question.ID] = true
	}

	answered := make(map[uint]bool, len(req.Answers))
	for _, answer := range req.Answers {
		if !questionSet[answer.QuestionID] {
			return nil, fmt.Errorf("question %d does not belong to form %d: %w", answer.QuestionID, formID, ErrValidation)
		}
		answered[answer.QuestionID] = true
	}
	for _, question := range questions {
		if question.IsRequired && !answered[question.ID] {
			return nil, fmt.Errorf("required question %d is unanswered: %w", question.ID, ErrValidation)
		}
	}

	response := model.Response{
		FormID:      form.ID,
		StudentID:   actor.UserID,
		IsAnonymous: req.IsAnonymous,
	}
	for _, answer := range req.Answers {
		response.Answers = append(response.Answers, model.Answer{
			QuestionID:  answer.QuestionID,
			AnswerValue: answer.AnswerValue,
		})
	}

	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Uint("form_id", formID).Msg("Failed to store response")
		return nil, fmt.Errorf("storing response: %w", err)
	}

	return &dto.ResponseSubmittedDTO{
		ID:          response.ID,
		FormID:      response.FormID,
		SubmittedAt: response.SubmittedAt,
		Message:     "Thank you for your feedback!",
	}, nil
}

func (s *responseService) ListResponses(actor Actor, formID uint) ([]dto.ResponseSummaryDTO, error) {
	if _, err := s.formSvc.AuthorizeFormAccess(actor, formID); err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.FindByForm(formID)
	if err != nil {
		return nil, fmt.Errorf("listing responses: %w", err)
	}

	dtos := make([]dto.ResponseSummaryDTO, 0, len(responses))
	for _, response := range responses {
		count, err := s.responseRepo.CountAnswers(response.ID)
		if err != nil {
			return nil, fmt.Errorf("counting answers: %w", err)
		}
		summary := dto.ResponseSummaryDTO{
			ID:          response.ID,
			FormID:      response.FormID,
			IsAnonymous: response.IsAnonymous,
			SubmittedAt: response.SubmittedAt,
			AnswerCount: int(count),
		}
		if !response.IsAnonymous {
			studentID := response.StudentID
			summary.StudentID = &studentID
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *responseService) GetResponse(actor Actor, responseID uint) (*dto.ResponseDetailDTO, error) {
	response, err := s.responseRepo.FindByIDWithAnswers(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("response %d: %w", responseID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching response: %w", err)
	}
	if _, err := s.formSvc.AuthorizeFormAccess(actor, response.FormID); err != nil {
		return nil, err
	}

	detail := &dto.ResponseDetailDTO{
		ID:          response.ID,
		FormID:      response.FormID,
		IsAnonymous: response.IsAnonymous,
		SubmittedAt: response.SubmittedAt,
		Answers:     make([]dto.AnswerDetailDTO, 0, len(response.Answers)),
	}
	if !response.IsAnonymous {
		studentID := response.StudentID
		detail.StudentID = &studentID
	}
	for _, answer := range response.Answers {
		detail.Answers = append(detail.Answers, dto.AnswerDetailDTO{
			QuestionID:   answer.QuestionID,
			QuestionText: answer.Question.QuestionText,
			QuestionType: answer.Question.QuestionType,
			AnswerValue:  answer.AnswerValue,
		})
	}
	return detail, nil
}

// ExportResponsesCSV renders one row per response with question columns in
// form position order. Anonymous responses show "Anonymous" in place of the
// student id.
func (s *responseService) ExportResponsesCSV(actor Actor, formID uint) (string, []byte, error) {
	form, err := s.formSvc.AuthorizeFormAccess(actor, formID)
	if err != nil {
		return "", nil, err
	}

	questions, err := s.reader.QuestionsByForm(formID)
	if err != nil {
		return "", nil, fmt.Errorf("fetching questions: %w", err)
	}
	responses, err := s.reader.ResponsesByForm(formID)
	if err != nil {
		return "", nil, fmt.Errorf("fetching responses: %w", err)
	}
	answers, err := s.reader.AnswersByForm(formID)
	if err != nil {
		return "", nil, fmt.Errorf("fetching answers: %w", err)
	}

	answersByResponse := make(map[uint]map[uint]string)
	for _, answer := range answers {
		if answersByResponse[answer.ResponseID] == nil {
			answersByResponse[answer.ResponseID] = make(map[uint]string)
		}
		answersByResponse[answer.ResponseID][answer.QuestionID] = answer.AnswerValue
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Response ID", "Submitted At", "Student"}
	for _, question := range questions {
		header = append(header, question.QuestionText)
	}
	if err := writer.Write(header); err != nil {
		return "", nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, response := range responses {
		student := "Anonymous"
		if !response.IsAnonymous {
			student = strconv.FormatUint(uint64(response.StudentID), 10)
		}
		row := []string{
			strconv.FormatUint(uint64(response.ID), 10),
			response.SubmittedAt.UTC().Format(time.RFC3339),
			student,
		}
		for _, question := range questions {
			row = append(row, answersByResponse[response.ID][question.ID])
		}
		if err := writer.Write(row); err != nil {
			return "", nil, fmt.Errorf("writing csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", nil, fmt.Errorf("flushing csv: %w", err)
	}

	filename := fmt.Sprintf("%s_responses.csv", form.CourseCode)
	return filename, buf.Bytes(), nil
}

func (s *responseService) loadOpenForm(actor Actor, formID uint) (*model.Form, error) {
	formDTO, err := s.formSvc.GetForm(actor, formID)
	if err != nil {
		return nil, err
	}
	if formDTO.Status != model.FormStatusPublished {
		return nil, fmt.Errorf("form is not accepting responses: %w", ErrValidation)
	}

	now := time.Now().UTC()
	if formDTO.OpenDate != nil && now.Before(*formDTO.OpenDate) {
		return nil, fmt.Errorf("form opens on %s: %w", formDTO.OpenDate.Format("2006-01-02 15:04"), ErrValidation)
	}
	if formDTO.CloseDate != nil && now.After(*formDTO.CloseDate) {
		return nil, fmt.Errorf("form is now closed: %w", ErrValidation)
	}

	return &model.Form{
		ID:     formDTO.ID,
		OrgID:  formDTO.OrgID,
		Status: formDTO.Status,
	}, nil
}

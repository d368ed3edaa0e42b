package repository

import (
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	// Create persists the response together with its answers in one transaction.
	Create(response *model.Response) error
	FindByID(id uint) (*model.Response, error)
	FindByIDWithAnswers(id uint) (*model.Response, error)
	FindByForm(formID uint) ([]model.Response, error)
	FindByFormAndStudent(formID, studentID uint) (*model.Response, error)
	CountAnswers(responseID uint) (int64, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	if err := r.db.First(&response, id).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByIDWithAnswers(id uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Preload("Answers.Question").First(&response, id).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByForm(formID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("form_id = ?", formID).Order("submitted_at ASC").Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindByFormAndStudent(formID, studentID uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Where("form_id = ? AND student_id = ?", formID, studentID).First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) CountAnswers(responseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).Where("response_id = ?", responseID).Count(&count).Error
	return count, err
}

package repository

import (
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByForm(formID uint) ([]model.Question, error)
	CountByForm(formID uint) (int64, error)
	Update(question *model.Question) error
	UpdateOrder(questionID uint, order int) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByForm(formID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("form_id = ?", formID).Order("position ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByForm(formID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("form_id = ?", formID).Count(&count).Error
	return count, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) UpdateOrder(questionID uint, order int) error {
	return r.db.Model(&model.Question{}).Where("id = ?", questionID).Update("position", order).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}

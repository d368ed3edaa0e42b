package repository

import (
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindByIDWithQuestions(id uint) (*model.Form, error)
	FindByOrg(orgID uint) ([]model.Form, error)
	FindByOrgAndStatus(orgID uint, status string) ([]model.Form, error)
	FindAllWithQuestionCount(orgID uint) ([]struct {
		model.Form
		QuestionCount int
	}, error)
	FindByInstructorWithQuestionCount(orgID, instructorID uint) ([]struct {
		model.Form
		QuestionCount int
	}, error)
	Update(form *model.Form) error
	Delete(id uint) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindByIDWithQuestions(id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).First(&form, id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindByOrg(orgID uint) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.Where("org_id = ?", orgID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *formRepository) FindByOrgAndStatus(orgID uint, status string) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.Where("org_id = ? AND status = ?", orgID, status).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *formRepository) FindAllWithQuestionCount(orgID uint) ([]struct {
	model.Form
	QuestionCount int
}, error) {
	var results []struct {
		model.Form
		QuestionCount int
	}
	err := r.db.Model(&model.Form{}).
		Select("forms.*, (SELECT COUNT(*) FROM questions WHERE questions.form_id = forms.id AND questions.deleted_at IS NULL) as question_count").
		Where("forms.org_id = ? AND forms.deleted_at IS NULL", orgID).
		Order("forms.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *formRepository) FindByInstructorWithQuestionCount(orgID, instructorID uint) ([]struct {
	model.Form
	QuestionCount int
}, error) {
	var results []struct {
		model.Form
		QuestionCount int
	}
	err := r.db.Model(&model.Form{}).
		Select("forms.*, (SELECT COUNT(*) FROM questions WHERE questions.form_id = forms.id AND questions.deleted_at IS NULL) as question_count").
		Where("forms.org_id = ? AND forms.instructor_id = ? AND forms.deleted_at IS NULL", orgID, instructorID).
		Order("forms.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *formRepository) Update(form *model.Form) error {
	return r.db.Save(form).Error
}

func (r *formRepository) Delete(id uint) error {
	return r.db.Delete(&model.Form{}, id).Error
}

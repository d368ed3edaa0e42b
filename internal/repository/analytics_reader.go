package repository

import (
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"gorm.io/gorm"
)

// AnalyticsReader is the read-only query surface the analytics engines depend
// on. Keeping it narrow lets the engines run against an in-memory fake in
// tests instead of a live database.
type AnalyticsReader interface {
	FormByID(id uint) (*model.Form, error)
	QuestionByID(id uint) (*model.Question, error)
	QuestionsByForm(formID uint) ([]model.Question, error)
	ResponsesByForm(formID uint) ([]model.Response, error)
	AnswersByQuestion(questionID uint) ([]model.Answer, error)
	AnswersByForm(formID uint) ([]model.Answer, error)
	AnswersByFormAndType(formID uint, questionType string) ([]model.Answer, error)
	AnswerCountsByResponse(formID uint) (map[uint]int, error)
	StudentCountByOrg(orgID uint) (int64, error)
}

type analyticsReader struct {
	db *gorm.DB
}

func NewAnalyticsReader(db *gorm.DB) AnalyticsReader {
	return &analyticsReader{db: db}
}

func (r *analyticsReader) FormByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *analyticsReader) QuestionByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *analyticsReader) QuestionsByForm(formID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("form_id = ?", formID).Order("position ASC").Find(&questions).Error
	return questions, err
}

func (r *analyticsReader) ResponsesByForm(formID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("form_id = ?", formID).Order("submitted_at ASC").Find(&responses).Error
	return responses, err
}

func (r *analyticsReader) AnswersByQuestion(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("question_id = ?", questionID).Order("id ASC").Find(&answers).Error
	return answers, err
}

func (r *analyticsReader) AnswersByForm(formID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Joins("JOIN responses ON responses.id = answers.response_id").
		Where("responses.form_id = ? AND responses.deleted_at IS NULL", formID).
		Order("answers.id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *analyticsReader) AnswersByFormAndType(formID uint, questionType string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Joins("JOIN responses ON responses.id = answers.response_id").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("responses.form_id = ? AND responses.deleted_at IS NULL AND questions.question_type = ?", formID, questionType).
		Order("answers.id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *analyticsReader) AnswerCountsByResponse(formID uint) (map[uint]int, error) {
	var rows []struct {
		ResponseID uint
		Total      int
	}
	err := r.db.Model(&model.Answer{}).
		Select("answers.response_id as response_id, COUNT(*) as total").
		Joins("JOIN responses ON responses.id = answers.response_id").
		Where("responses.form_id = ? AND responses.deleted_at IS NULL", formID).
		Group("answers.response_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.ResponseID] = row.Total
	}
	return counts, nil
}

func (r *analyticsReader) StudentCountByOrg(orgID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("org_id = ? AND role = ?", orgID, model.RoleStudent).
		Count(&count).Error
	return count, err
}

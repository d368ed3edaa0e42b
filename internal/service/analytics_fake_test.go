package service

import (
	"sort"
	"time"

	"github.com/adil-123-dev/Insight-loop/internal/model"
	"gorm.io/gorm"
)

// fakeAnalyticsReader backs the analytics engines with in-memory data so
// their aggregation logic can be tested without a database.
type fakeAnalyticsReader struct {
	forms        map[uint]model.Form
	questions    map[uint]model.Question
	responses    map[uint][]model.Response // keyed by form id
	responseForm map[uint]uint             // response id -> form id
	answers      []model.Answer
	students     map[uint]int64 // org id -> student count
}

func newFakeAnalyticsReader() *fakeAnalyticsReader {
	return &fakeAnalyticsReader{
		forms:        make(map[uint]model.Form),
		questions:    make(map[uint]model.Question),
		responses:    make(map[uint][]model.Response),
		responseForm: make(map[uint]uint),
		students:     make(map[uint]int64),
	}
}

func (f *fakeAnalyticsReader) addForm(form model.Form) {
	f.forms[form.ID] = form
}

func (f *fakeAnalyticsReader) addQuestion(question model.Question) {
	f.questions[question.ID] = question
}

func (f *fakeAnalyticsReader) addResponse(response model.Response) {
	f.responses[response.FormID] = append(f.responses[response.FormID], response)
	f.responseForm[response.ID] = response.FormID
}

func (f *fakeAnalyticsReader) addAnswer(answer model.Answer) {
	f.answers = append(f.answers, answer)
}

func (f *fakeAnalyticsReader) FormByID(id uint) (*model.Form, error) {
	form, ok := f.forms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &form, nil
}

func (f *fakeAnalyticsReader) QuestionByID(id uint) (*model.Question, error) {
	question, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &question, nil
}

func (f *fakeAnalyticsReader) QuestionsByForm(formID uint) ([]model.Question, error) {
	var questions []model.Question
	for _, question := range f.questions {
		if question.FormID == formID {
			questions = append(questions, question)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].Order < questions[j].Order })
	return questions, nil
}

func (f *fakeAnalyticsReader) ResponsesByForm(formID uint) ([]model.Response, error) {
	responses := append([]model.Response(nil), f.responses[formID]...)
	sort.Slice(responses, func(i, j int) bool { return responses[i].SubmittedAt.Before(responses[j].SubmittedAt) })
	return responses, nil
}

func (f *fakeAnalyticsReader) AnswersByQuestion(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	for _, answer := range f.answers {
		if answer.QuestionID == questionID {
			answers = append(answers, answer)
		}
	}
	return answers, nil
}

func (f *fakeAnalyticsReader) AnswersByForm(formID uint) ([]model.Answer, error) {
	var answers []model.Answer
	for _, answer := range f.answers {
		if f.responseForm[answer.ResponseID] == formID {
			answers = append(answers, answer)
		}
	}
	return answers, nil
}

func (f *fakeAnalyticsReader) AnswersByFormAndType(formID uint, questionType string) ([]model.Answer, error) {
	var answers []model.Answer
	for _, answer := range f.answers {
		if f.responseForm[answer.ResponseID] != formID {
			continue
		}
		if f.questions[answer.QuestionID].QuestionType == questionType {
			answers = append(answers, answer)
		}
	}
	return answers, nil
}

func (f *fakeAnalyticsReader) AnswerCountsByResponse(formID uint) (map[uint]int, error) {
	counts := make(map[uint]int)
	for _, answer := range f.answers {
		if f.responseForm[answer.ResponseID] == formID {
			counts[answer.ResponseID]++
		}
	}
	return counts, nil
}

func (f *fakeAnalyticsReader) StudentCountByOrg(orgID uint) (int64, error) {
	return f.students[orgID], nil
}

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

package dto

type QuestionCreateDTO struct {
	QuestionText string   `json:"question_text" binding:"required"`
	QuestionType string   `json:"question_type" binding:"required,oneof=rating text mcq yes_no"`
	IsRequired   bool     `json:"is_required"`
	Options      []string `json:"options"`
}

type QuestionUpdateDTO struct {
	QuestionText *string  `json:"question_text"`
	QuestionType *string  `json:"question_type" binding:"omitempty,oneof=rating text mcq yes_no"`
	IsRequired   *bool    `json:"is_required"`
	Options      []string `json:"options"`
}

type QuestionReorderDTO struct {
	QuestionIDs []uint `json:"question_ids" binding:"required,min=1"`
}

type QuestionResponseDTO struct {
	ID           uint     `json:"id"`
	FormID       uint     `json:"form_id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	IsRequired   bool     `json:"is_required"`
	Order        int      `json:"order"`
	Options      []string `json:"options,omitempty"`
}

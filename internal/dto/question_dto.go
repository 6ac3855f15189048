package dto

type QuestionOptionRequest struct {
	Label string `json:"label" validate:"required,len=1,oneof=A B C D E a b c d e"`
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"min=1,max=5"`
}

type CreateQuestionRequest struct {
	Text         string                  `json:"text" validate:"required"`
	Domain       string                  `json:"domain" validate:"required,oneof=soft digital"`
	Category     string                  `json:"category" validate:"required"`
	DisplayOrder int                     `json:"display_order"`
	IsActive     *bool                   `json:"is_active"`
	Options      []QuestionOptionRequest `json:"options" validate:"required,min=2,dive"`
}

type ListQuestionsRequest struct {
	ActiveOnly bool   `query:"active_only"`
	Domain     string `query:"domain"`
	Category   string `query:"category"`
}

type QuestionOptionResponse struct {
	Id    uint   `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type QuestionResponse struct {
	Id           uint                     `json:"id"`
	Text         string                   `json:"text"`
	Domain       string                   `json:"domain"`
	Category     string                   `json:"category"`
	DisplayOrder int                      `json:"display_order"`
	IsActive     bool                     `json:"is_active"`
	Options      []QuestionOptionResponse `json:"options"`
}

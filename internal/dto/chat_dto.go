package dto

type ChatMessageRequest struct {
	UserId string `json:"user_id" validate:"required,max=128"`
	Text   string `json:"text" validate:"max=4096"`
}

type ChatMessageResponse struct {
	Reply string `json:"reply"`
}

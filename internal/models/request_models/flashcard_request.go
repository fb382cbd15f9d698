package request_models

type CreateFlashcardRequest struct {
	DeckID    string `json:"deck_id" binding:"required,uuid"`
	FrontText string `json:"front_text" binding:"required"`
	BackText  string `json:"back_text" binding:"required"`
}

type UpdateFlashcardRequest struct {
	FrontText *string `json:"front_text"`
	BackText  *string `json:"back_text"`
}

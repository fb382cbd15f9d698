package request_models

type GenerateFlashcardsRequest struct {
	Text   string `json:"text" binding:"required"`
	DeckID string `json:"deck_id"`
	Count  int    `json:"count"`
}

package response_models

type GeneratedCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GenerateFlashcardsResponse struct {
	GenerationID  string          `json:"generation_id"`
	DeckID        string          `json:"deck_id,omitempty"`
	Cards         []GeneratedCard `json:"cards"`
	InsertedCount int             `json:"inserted_count"`
}

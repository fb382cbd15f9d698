package response_models

type DeckResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Category    string `json:"category"`
	Difficulty  int    `json:"difficulty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type DeckListResponse struct {
	Items      []DeckResponse `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

type FlashcardResponse struct {
	ID        string `json:"id"`
	DeckID    string `json:"deck_id"`
	FrontText string `json:"front_text"`
	BackText  string `json:"back_text"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type FlashcardListResponse struct {
	Items      []FlashcardResponse `json:"items"`
	Pagination *Pagination         `json:"pagination,omitempty"`
}

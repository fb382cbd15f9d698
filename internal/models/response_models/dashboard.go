package response_models

type DashboardDeck struct {
	DeckID            string `json:"deck_id"`
	DeckTitle         string `json:"deck_title"`
	FlashcardsStudied int    `json:"flashcards_studied"`
}

type DashboardResponse struct {
	Username               string          `json:"username"`
	TotalFlashcardsStudied int             `json:"total_flashcards_studied"`
	MostReviewedDeck       string          `json:"most_reviewed_deck,omitempty"`
	WeeklyGoal             int             `json:"weekly_goal"`
	MasteryLevel           float64         `json:"mastery_level"`
	StudyStreak            int             `json:"study_streak"`
	FocusScore             float64         `json:"focus_score"`
	RetentionRate          float64         `json:"retention_rate"`
	CardsMastered          int             `json:"cards_mastered"`
	MinutesPerDay          float64         `json:"minutes_per_day"`
	Accuracy               float64         `json:"accuracy"`
	Decks                  []DashboardDeck `json:"decks"`
}

package request_models

type RecordProgressRequest struct {
	DeckID      string  `json:"deck_id" binding:"required,uuid"`
	FlashcardID string  `json:"flashcard_id" binding:"required,uuid"`
	WasCorrect  bool    `json:"was_correct"`
	TimeSpent   float64 `json:"time_spent"` // minutes
}

type UpdateStatsRequest struct {
	WeeklyGoal    *int     `json:"weekly_goal"`
	MasteryLevel  *float64 `json:"mastery_level"`
	StudyStreak   *int     `json:"study_streak"`
	FocusScore    *float64 `json:"focus_score"`
	RetentionRate *float64 `json:"retention_rate"`
	CardsMastered *int     `json:"cards_mastered"`
	MinutesPerDay *float64 `json:"minutes_per_day"`
	Accuracy      *float64 `json:"accuracy"`
}

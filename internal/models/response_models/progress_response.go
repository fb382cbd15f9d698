package response_models

type ProgressResponse struct {
	ID                string  `json:"id"`
	DeckID            string  `json:"deck_id"`
	FlashcardID       string  `json:"flashcard_id"`
	StudyCount        int     `json:"study_count"`
	CorrectAttempts   int     `json:"correct_attempts"`
	IncorrectAttempts int     `json:"incorrect_attempts"`
	TotalStudyTime    float64 `json:"total_study_time"`
	LastStudiedAt     string  `json:"last_studied_at,omitempty"`
	NextReviewAt      string  `json:"next_review_at,omitempty"`
	ReviewStatus      string  `json:"review_status"`
	IsLearned         bool    `json:"is_learned"`
}

type StatsResponse struct {
	WeeklyGoal    int     `json:"weekly_goal"`
	MasteryLevel  float64 `json:"mastery_level"`
	StudyStreak   int     `json:"study_streak"`
	FocusScore    float64 `json:"focus_score"`
	RetentionRate float64 `json:"retention_rate"`
	CardsMastered int     `json:"cards_mastered"`
	MinutesPerDay float64 `json:"minutes_per_day"`
	Accuracy      float64 `json:"accuracy"`
}

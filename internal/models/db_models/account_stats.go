package db_models

import "github.com/google/uuid"

// AccountStats is a per-account aggregate row, recomputed lazily when
// progress is recorded or the dashboard is read.
type AccountStats struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	WeeklyGoal    int     `gorm:"default:0"` // target flashcards per week
	MasteryLevel  float64 `gorm:"default:0"` // % of mastered cards
	StudyStreak   int     `gorm:"default:0"` // days in a row studied
	FocusScore    float64 `gorm:"default:0"`
	RetentionRate float64 `gorm:"default:0"`
	CardsMastered int     `gorm:"default:0"`
	MinutesPerDay float64 `gorm:"default:0"`
	Accuracy      float64 `gorm:"default:0"`

	Account Account `gorm:"foreignKey:AccountID"`
}

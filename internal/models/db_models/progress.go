package db_models

import "github.com/google/uuid"

type ReviewStatus string

const (
	ReviewStatusNew       ReviewStatus = "new"
	ReviewStatusLearning  ReviewStatus = "learning"
	ReviewStatusReviewing ReviewStatus = "reviewing"
	ReviewStatusMastered  ReviewStatus = "mastered"
)

// Progress is one study record per (account, flashcard).
type Progress struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_account_flashcard"`
	DeckID      uuid.UUID `gorm:"type:uuid;index;not null"`
	FlashcardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_account_flashcard"`

	StudyCount        int     `gorm:"default:0;not null"`
	CorrectAttempts   int     `gorm:"default:0;not null"`
	IncorrectAttempts int     `gorm:"default:0;not null"`
	TotalStudyTime    float64 `gorm:"default:0;not null"` // minutes

	LastStudiedAt int64
	NextReviewAt  int64

	ReviewStatus ReviewStatus `gorm:"size:20;default:'new';not null"`
	IsLearned    bool         `gorm:"default:false;not null"`
	Interval     float64      `gorm:"default:1"`

	Account   Account   `gorm:"foreignKey:AccountID"`
	Deck      Deck      `gorm:"foreignKey:DeckID"`
	Flashcard Flashcard `gorm:"foreignKey:FlashcardID"`
}

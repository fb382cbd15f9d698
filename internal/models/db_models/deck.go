package db_models

import "github.com/google/uuid"

type Deck struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"size:100;not null"`
	Description string
	Subject     string `gorm:"size:50"`
	Category    string `gorm:"size:50"`
	Difficulty  int    // 1..5
	IsDefault   bool   `gorm:"default:false;not null"`

	Flashcards []Flashcard `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE"`

	Account Account `gorm:"foreignKey:AccountID"`
}

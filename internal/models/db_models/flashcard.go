package db_models

import "github.com/google/uuid"

type Flashcard struct {
	BaseModel
	DeckID    uuid.UUID `gorm:"type:uuid;index;not null"`
	FrontText string    `gorm:"not null"`
	BackText  string    `gorm:"not null"`

	Progress []Progress `gorm:"foreignKey:FlashcardID;constraint:OnDelete:CASCADE"`

	Deck Deck `gorm:"foreignKey:DeckID"`
}

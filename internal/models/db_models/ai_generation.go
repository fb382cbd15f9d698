package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GenerationStatus string

const (
	GenStatusQueued   GenerationStatus = "queued"
	GenStatusComplete GenerationStatus = "complete"
	GenStatusFailed   GenerationStatus = "failed"
)

// AIGeneration records one flashcard-generation request and its outcome.
type AIGeneration struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;index;not null"`
	DeckID    *uuid.UUID `gorm:"type:uuid;index"`

	SourceType    string `gorm:"size:32;not null"` // text, url, notes
	SourceExcerpt string
	Prompt        string
	Model         string           `gorm:"size:128"`
	Status        GenerationStatus `gorm:"size:16;not null"`

	Output datatypes.JSON `gorm:"type:jsonb"`

	Account Account `gorm:"foreignKey:AccountID"`
}

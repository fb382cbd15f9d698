package repositories

import (
	"context"

	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
)

type GenerationRepository interface {
	Insert(ctx context.Context, gen *db_models.AIGeneration) error
	Save(ctx context.Context, gen *db_models.AIGeneration) error
}

type generationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) Insert(ctx context.Context, gen *db_models.AIGeneration) error {
	return r.db.WithContext(ctx).Create(gen).Error
}

func (r *generationRepository) Save(ctx context.Context, gen *db_models.AIGeneration) error {
	return r.db.WithContext(ctx).Save(gen).Error
}

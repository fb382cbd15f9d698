package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
)

type DashboardRepository interface {
	ListDecks(ctx context.Context, accountID uuid.UUID) ([]db_models.Deck, error)
	CountDecks(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountFlashcards(ctx context.Context, accountID uuid.UUID) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) ListDecks(ctx context.Context, accountID uuid.UUID) ([]db_models.Deck, error) {
	var decks []db_models.Deck
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Find(&decks).Error
	return decks, err
}

func (r *dashboardRepository) CountDecks(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Deck{}).
		Where("account_id = ?", accountID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountFlashcards(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Flashcard{}).
		Joins("JOIN decks ON decks.id = flashcards.deck_id").
		Where("decks.account_id = ?", accountID).
		Count(&n).Error
	return n, err
}

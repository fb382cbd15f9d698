package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
)

type DeckRepository interface {
	Insert(ctx context.Context, deck *db_models.Deck) error
	Update(ctx context.Context, deck *db_models.Deck) error
	Delete(ctx context.Context, deck *db_models.Deck) error
	FindByIdForAccount(ctx context.Context, deckID, accountID uuid.UUID) (*db_models.Deck, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]db_models.Deck, int64, error)
}

type deckRepository struct {
	db *gorm.DB
}

func NewDeckRepository(db *gorm.DB) DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) Insert(ctx context.Context, deck *db_models.Deck) error {
	return r.db.WithContext(ctx).Create(deck).Error
}

func (r *deckRepository) Update(ctx context.Context, deck *db_models.Deck) error {
	return r.db.WithContext(ctx).Save(deck).Error
}

func (r *deckRepository) Delete(ctx context.Context, deck *db_models.Deck) error {
	return r.db.WithContext(ctx).Delete(deck).Error
}

func (r *deckRepository) FindByIdForAccount(ctx context.Context, deckID, accountID uuid.UUID) (*db_models.Deck, error) {
	var deck db_models.Deck
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", deckID, accountID).
		First(&deck).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &deck, nil
}

func (r *deckRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]db_models.Deck, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&db_models.Deck{}).
		Where("account_id = ?", accountID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var decks []db_models.Deck
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&decks).Error
	if err != nil {
		return nil, 0, err
	}

	return decks, total, nil
}

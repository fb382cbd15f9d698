package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
)

type FlashcardRepository interface {
	Insert(ctx context.Context, card *db_models.Flashcard) error
	InsertBatch(ctx context.Context, cards []db_models.Flashcard) error
	Update(ctx context.Context, card *db_models.Flashcard) error
	Delete(ctx context.Context, card *db_models.Flashcard) error
	FindByIdForAccount(ctx context.Context, cardID, accountID uuid.UUID) (*db_models.Flashcard, error)
	ListByDeck(ctx context.Context, deckID uuid.UUID, page, perPage int) ([]db_models.Flashcard, int64, error)
	ListAllByDeck(ctx context.Context, deckID uuid.UUID) ([]db_models.Flashcard, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]db_models.Flashcard, int64, error)
}

type flashcardRepository struct {
	db *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Insert(ctx context.Context, card *db_models.Flashcard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *flashcardRepository) InsertBatch(ctx context.Context, cards []db_models.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&cards).Error
}

func (r *flashcardRepository) Update(ctx context.Context, card *db_models.Flashcard) error {
	return r.db.WithContext(ctx).Save(card).Error
}

func (r *flashcardRepository) Delete(ctx context.Context, card *db_models.Flashcard) error {
	return r.db.WithContext(ctx).Delete(card).Error
}

// FindByIdForAccount enforces ownership through the owning deck.
func (r *flashcardRepository) FindByIdForAccount(ctx context.Context, cardID, accountID uuid.UUID) (*db_models.Flashcard, error) {
	var card db_models.Flashcard
	err := r.db.WithContext(ctx).
		Joins("JOIN decks ON decks.id = flashcards.deck_id").
		Where("flashcards.id = ? AND decks.account_id = ?", cardID, accountID).
		First(&card).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &card, nil
}

func (r *flashcardRepository) ListByDeck(ctx context.Context, deckID uuid.UUID, page, perPage int) ([]db_models.Flashcard, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&db_models.Flashcard{}).
		Where("deck_id = ?", deckID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cards []db_models.Flashcard
	err := r.db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("updated_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&cards).Error
	if err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

func (r *flashcardRepository) ListAllByDeck(ctx context.Context, deckID uuid.UUID) ([]db_models.Flashcard, error) {
	var cards []db_models.Flashcard
	err := r.db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("updated_at DESC").
		Find(&cards).Error
	return cards, err
}

func (r *flashcardRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]db_models.Flashcard, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&db_models.Flashcard{}).
		Joins("JOIN decks ON decks.id = flashcards.deck_id").
		Where("decks.account_id = ?", accountID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cards []db_models.Flashcard
	err := r.db.WithContext(ctx).
		Joins("JOIN decks ON decks.id = flashcards.deck_id").
		Where("decks.account_id = ?", accountID).
		Order("flashcards.updated_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&cards).Error
	if err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
)

type ProgressAggregates struct {
	TotalCorrect   int64   `gorm:"column:total_correct"`
	TotalAttempts  int64   `gorm:"column:total_attempts"`
	TotalStudyTime float64 `gorm:"column:total_study_time"`
}

type ProgressRepository interface {
	Upsert(ctx context.Context, progress *db_models.Progress) error
	FindByAccountAndFlashcard(ctx context.Context, accountID, flashcardID uuid.UUID) (*db_models.Progress, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, deckID, flashcardID *uuid.UUID) ([]db_models.Progress, error)
	Aggregates(ctx context.Context, accountID uuid.UUID) (*ProgressAggregates, error)
	CountMastered(ctx context.Context, accountID uuid.UUID) (int64, error)
	StudiedPerDeck(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]int, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Upsert(ctx context.Context, progress *db_models.Progress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}

func (r *progressRepository) FindByAccountAndFlashcard(ctx context.Context, accountID, flashcardID uuid.UUID) (*db_models.Progress, error) {
	var progress db_models.Progress
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND flashcard_id = ?", accountID, flashcardID).
		First(&progress).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &progress, nil
}

func (r *progressRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, deckID, flashcardID *uuid.UUID) ([]db_models.Progress, error) {
	query := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if deckID != nil {
		query = query.Where("deck_id = ?", *deckID)
	}
	if flashcardID != nil {
		query = query.Where("flashcard_id = ?", *flashcardID)
	}

	var entries []db_models.Progress
	err := query.Find(&entries).Error
	return entries, err
}

func (r *progressRepository) Aggregates(ctx context.Context, accountID uuid.UUID) (*ProgressAggregates, error) {
	var agg ProgressAggregates
	err := r.db.WithContext(ctx).
		Model(&db_models.Progress{}).
		Select("COALESCE(SUM(correct_attempts),0) AS total_correct, COALESCE(SUM(study_count),0) AS total_attempts, COALESCE(SUM(total_study_time),0) AS total_study_time").
		Where("account_id = ?", accountID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *progressRepository) CountMastered(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Progress{}).
		Where("account_id = ? AND review_status = ?", accountID, db_models.ReviewStatusMastered).
		Count(&n).Error
	return n, err
}

func (r *progressRepository) StudiedPerDeck(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]int, error) {
	type row struct {
		DeckID uuid.UUID `gorm:"column:deck_id"`
		Sum    int       `gorm:"column:sum"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&db_models.Progress{}).
		Select("deck_id, COALESCE(SUM(study_count),0) AS sum").
		Where("account_id = ?", accountID).
		Group("deck_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		out[r.DeckID] = r.Sum
	}
	return out, nil
}

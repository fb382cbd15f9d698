package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
)

type StatsRepository interface {
	// GetOrCreate lazily provisions the stats row, matching how the rest of
	// the app treats aggregates as derive-on-demand.
	GetOrCreate(ctx context.Context, accountID uuid.UUID) (*db_models.AccountStats, error)
	Save(ctx context.Context, stats *db_models.AccountStats) error
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetOrCreate(ctx context.Context, accountID uuid.UUID) (*db_models.AccountStats, error) {
	var stats db_models.AccountStats
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&stats).Error

	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats = db_models.AccountStats{AccountID: accountID}
	if err := r.db.WithContext(ctx).Create(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) Save(ctx context.Context, stats *db_models.AccountStats) error {
	return r.db.WithContext(ctx).Save(stats).Error
}

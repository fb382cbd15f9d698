package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"flashlearn/internal/models/db_models"
)

type UsageRepository interface {
	// GetUsage returns the billable-action count for one period, 0 when no
	// row exists. Reads never create rows.
	GetUsage(ctx context.Context, accountID uuid.UUID, periodKey string) (int, error)
	GetRecord(ctx context.Context, accountID uuid.UUID, periodKey string) (*db_models.UsageRecord, error)
	// Increment adds n to the (account, period) counter, creating the row on
	// first use, and returns the new count. The add happens inside a single
	// INSERT .. ON CONFLICT DO UPDATE so concurrent callers across process
	// instances cannot lose updates.
	Increment(ctx context.Context, accountID uuid.UUID, periodKey string, n, freeQuota int) (int, error)
}

type usageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) GetUsage(ctx context.Context, accountID uuid.UUID, periodKey string) (int, error) {
	rec, err := r.GetRecord(ctx, accountID, periodKey)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, nil
	}
	return rec.Count, nil
}

func (r *usageRepository) GetRecord(ctx context.Context, accountID uuid.UUID, periodKey string) (*db_models.UsageRecord, error) {
	var rec db_models.UsageRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND period_key = ?", accountID, periodKey).
		First(&rec).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &rec, nil
}

func (r *usageRepository) Increment(ctx context.Context, accountID uuid.UUID, periodKey string, n, freeQuota int) (int, error) {
	rec := db_models.UsageRecord{
		AccountID: accountID,
		PeriodKey: periodKey,
		Count:     n,
		FreeQuota: freeQuota,
	}

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "account_id"}, {Name: "period_key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"count":      gorm.Expr("usage_records.count + ?", n),
					"updated_at": time.Now().Unix(),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "count"}}},
		).
		Create(&rec).Error
	if err != nil {
		return 0, err
	}

	return rec.Count, nil
}

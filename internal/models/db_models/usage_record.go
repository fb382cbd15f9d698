package db_models

import "github.com/google/uuid"

// UsageRecord counts billable actions for one account in one calendar month.
// One row per (account_id, period_key); rows are created lazily on the first
// billable action of a period and kept forever for audit. Count mutation goes
// through an atomic upsert, never a read-then-write in application code.
type UsageRecord struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_usage_account_period"`
	PeriodKey string    `gorm:"size:7;not null;uniqueIndex:idx_usage_account_period"` // "2006-01", UTC
	Count     int       `gorm:"default:0;not null"`
	FreeQuota int       `gorm:"default:5;not null"`
}

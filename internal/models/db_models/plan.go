package db_models

import "gorm.io/datatypes"

type BillingPeriod string

const (
	PeriodMonth BillingPeriod = "month"
	PeriodYear  BillingPeriod = "year"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "monthly"
	Name        string
	Description *string
	Period      BillingPeriod `gorm:"size:10"`
	PriceMinor  int64         // 10000 = KES 100.00
	Currency    string        `gorm:"size:3"`
	IsActive    bool          `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

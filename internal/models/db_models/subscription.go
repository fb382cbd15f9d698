package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusExpired  SubscriptionStatus = "expired"
	SubStatusCanceled SubscriptionStatus = "canceled"
)

// Subscription holds the single currently-relevant subscription state per
// account (latest write wins). Expiry is derived at read time from EndsAt;
// the stored status is never flipped by a background job.
type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PlanCode  string    `gorm:"size:32;index;not null"`

	Status   SubscriptionStatus `gorm:"size:16;index;not null"`
	StartsAt int64              `gorm:"not null"` // unix seconds
	EndsAt   int64              `gorm:"not null"`

	Provider string `gorm:"size:32;index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}

// ActiveAt reports whether the paid window covers now, regardless of the
// stored status field.
func (s *Subscription) ActiveAt(now time.Time) bool {
	return s.Status == SubStatusActive && now.Unix() < s.EndsAt
}

// DerivedStatus computes the externally visible status at now.
func (s *Subscription) DerivedStatus(now time.Time) SubscriptionStatus {
	if s.Status == SubStatusActive && now.Unix() >= s.EndsAt {
		return SubStatusExpired
	}
	return s.Status
}

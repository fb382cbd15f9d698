package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TxnStatus string

const (
	TxnStatusInitiated TxnStatus = "initiated"
	TxnStatusPending   TxnStatus = "pending"
	TxnStatusSucceeded TxnStatus = "succeeded"
	TxnStatusFailed    TxnStatus = "failed"
)

// PaymentTransaction is the append-mostly audit record of every checkout
// attempt. Rows are never deleted; terminal rows are never rewritten, which
// is what makes webhook retries idempotent.
type PaymentTransaction struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	AmountMinor int64     `gorm:"not null"` // e.g. 10000 = KES 100.00
	Currency    string    `gorm:"size:3;not null"`
	Status      TxnStatus `gorm:"size:16;index;not null"`
	PlanCode    string    `gorm:"size:32;not null"`

	// ClientReference is generated before any provider interaction and is
	// the idempotency key for callbacks.
	ClientReference string `gorm:"size:64;uniqueIndex;not null"`
	// ProviderReference is the provider-side checkout session id, learned
	// only after the provider responds.
	ProviderReference string `gorm:"size:128;index"`
	Provider          string `gorm:"size:32;index"`

	PaidAt *int64

	Receipt  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}

// Terminal reports whether no further transition is permitted.
func (s TxnStatus) Terminal() bool {
	return s == TxnStatusSucceeded || s == TxnStatusFailed
}

// CanTransitionTo encodes the transaction state machine:
// initiated -> {pending, succeeded, failed}; pending -> {succeeded, failed}.
func (s TxnStatus) CanTransitionTo(next TxnStatus) bool {
	switch s {
	case TxnStatusInitiated:
		return next == TxnStatusPending || next == TxnStatusSucceeded || next == TxnStatusFailed
	case TxnStatusPending:
		return next == TxnStatusSucceeded || next == TxnStatusFailed
	default:
		return false
	}
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
)

// SubscriptionRepository keeps the single relevant subscription row per
// account. Tx variants run inside a caller-supplied transaction so that
// activation commits atomically with the payment-status update; a nil tx
// falls back to the repository's own handle.
type SubscriptionRepository interface {
	CurrentByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	CurrentByAccountTx(tx *gorm.DB, accountID uuid.UUID) (*db_models.Subscription, error)
	SaveTx(tx *gorm.DB, sub *db_models.Subscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *subscriptionRepository) CurrentByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	return r.current(r.db.WithContext(ctx), accountID)
}

func (r *subscriptionRepository) CurrentByAccountTx(tx *gorm.DB, accountID uuid.UUID) (*db_models.Subscription, error) {
	return r.current(r.handle(tx), accountID)
}

func (r *subscriptionRepository) current(db *gorm.DB, accountID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := db.Where("account_id = ?", accountID).First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionRepository) SaveTx(tx *gorm.DB, sub *db_models.Subscription) error {
	return r.handle(tx).Save(sub).Error
}

package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
)

type TransactionRepository interface {
	Create(ctx context.Context, txn *db_models.PaymentTransaction) error
	Save(ctx context.Context, txn *db_models.PaymentTransaction) error
	FindByClientReference(ctx context.Context, ref string) (*db_models.PaymentTransaction, error)
	FindByProviderReference(ctx context.Context, ref string) (*db_models.PaymentTransaction, error)
	// UpdateStatus applies a non-terminal transition (pending/failed).
	UpdateStatus(ctx context.Context, txn *db_models.PaymentTransaction, status db_models.TxnStatus, providerRef string) error
	// MarkSucceeded flips the transaction to succeeded and runs activate in
	// the same database transaction, so the paid record and the subscription
	// commit together or not at all. The status flip is guarded on the row
	// still being non-terminal; a delivery that loses the race is a no-op
	// and never activates, giving at-most-once activation per reference.
	MarkSucceeded(ctx context.Context, txn *db_models.PaymentTransaction, providerRef string, activate func(tx *gorm.DB) error) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *db_models.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) Save(ctx context.Context, txn *db_models.PaymentTransaction) error {
	return r.db.WithContext(ctx).Save(txn).Error
}

func (r *transactionRepository) FindByClientReference(ctx context.Context, ref string) (*db_models.PaymentTransaction, error) {
	return r.findBy(ctx, "client_reference = ?", ref)
}

func (r *transactionRepository) FindByProviderReference(ctx context.Context, ref string) (*db_models.PaymentTransaction, error) {
	return r.findBy(ctx, "provider_reference = ?", ref)
}

func (r *transactionRepository) findBy(ctx context.Context, cond string, ref string) (*db_models.PaymentTransaction, error) {
	if ref == "" {
		return nil, nil
	}

	var txn db_models.PaymentTransaction
	err := r.db.WithContext(ctx).Where(cond, ref).First(&txn).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, txn *db_models.PaymentTransaction, status db_models.TxnStatus, providerRef string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().Unix(),
	}
	if providerRef != "" {
		updates["provider_reference"] = providerRef
	}
	return r.db.WithContext(ctx).Model(txn).Updates(updates).Error
}

func (r *transactionRepository) MarkSucceeded(ctx context.Context, txn *db_models.PaymentTransaction, providerRef string, activate func(tx *gorm.DB) error) error {
	now := time.Now().Unix()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":     db_models.TxnStatusSucceeded,
			"paid_at":    now,
			"updated_at": now,
		}
		if providerRef != "" {
			updates["provider_reference"] = providerRef
		}

		res := tx.Model(&db_models.PaymentTransaction{}).
			Where("id = ? AND status IN ?", txn.ID,
				[]db_models.TxnStatus{db_models.TxnStatusInitiated, db_models.TxnStatusPending}).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		// A concurrent delivery already finalized the row; the first one
		// activated, this one must not.
		if res.RowsAffected == 0 {
			return nil
		}

		txn.Status = db_models.TxnStatusSucceeded
		txn.PaidAt = &now
		if providerRef != "" {
			txn.ProviderReference = providerRef
		}
		return activate(tx)
	})
}

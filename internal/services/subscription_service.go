package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

// SubscriptionWindow is the fixed paid window of the prototype plan.
const SubscriptionWindow = 30 * 24 * time.Hour

type SubscriptionServiceInterface interface {
	// ActivateTx grants 30 days of subscription inside the caller's database
	// transaction. Re-activating an unexpired subscription stacks the new
	// window onto the current EndsAt instead of resetting from now, so a
	// renewal racing an expiry never burns remaining paid time.
	ActivateTx(tx *gorm.DB, accountID uuid.UUID, planCode string, now time.Time) (*db_models.Subscription, error)
	// GetStatus derives the externally visible status at now. Expiry is
	// computed here at read time; nothing ever sweeps stored rows.
	GetStatus(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.SubscriptionStatus, error)
	IsActive(ctx context.Context, accountID uuid.UUID, now time.Time) (bool, error)
}

type subscriptionService struct {
	subRepo  repositories.SubscriptionRepository
	provider string
}

func NewSubscriptionService(subRepo repositories.SubscriptionRepository, provider string) SubscriptionServiceInterface {
	return &subscriptionService{
		subRepo:  subRepo,
		provider: provider,
	}
}

func (s *subscriptionService) ActivateTx(tx *gorm.DB, accountID uuid.UUID, planCode string, now time.Time) (*db_models.Subscription, error) {
	current, err := s.subRepo.CurrentByAccountTx(tx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if current != nil && current.ActiveAt(now) {
		// Stack: extend from the existing window end.
		current.EndsAt = time.Unix(current.EndsAt, 0).Add(SubscriptionWindow).Unix()
		current.PlanCode = planCode
		current.Provider = s.provider
		if err := s.subRepo.SaveTx(tx, current); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return current, nil
	}

	sub := current
	if sub == nil {
		sub = &db_models.Subscription{AccountID: accountID}
	}
	sub.PlanCode = planCode
	sub.Status = db_models.SubStatusActive
	sub.StartsAt = now.Unix()
	sub.EndsAt = now.Add(SubscriptionWindow).Unix()
	sub.Provider = s.provider

	if err := s.subRepo.SaveTx(tx, sub); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return sub, nil
}

func (s *subscriptionService) GetStatus(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.SubscriptionStatus, error) {
	sub, err := s.subRepo.CurrentByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if sub == nil {
		return &response_models.SubscriptionStatus{Status: "none"}, nil
	}

	return &response_models.SubscriptionStatus{
		Status:    string(sub.DerivedStatus(now)),
		PlanCode:  sub.PlanCode,
		PeriodEnd: utils.FormatRFC3339UTC(utils.FromUnixSecondsUTC(sub.EndsAt)),
	}, nil
}

func (s *subscriptionService) IsActive(ctx context.Context, accountID uuid.UUID, now time.Time) (bool, error) {
	sub, err := s.subRepo.CurrentByAccount(ctx, accountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return sub != nil && sub.ActiveAt(now), nil
}

package services

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

const DefaultFreeQuota = 5

type BillingConfig struct {
	FreeQuota int
}

func BillingConfigFromEnv() BillingConfig {
	quota := DefaultFreeQuota
	if raw := os.Getenv("FREE_MONTHLY_QUOTA"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			quota = v
		}
	}
	return BillingConfig{FreeQuota: quota}
}

// BillingServiceInterface is the quota gate. CanProceed is a pure read; the
// caller performs its billable action first and records usage only after the
// action's effect is durably committed, so a failed action never consumes
// quota.
type BillingServiceInterface interface {
	CanProceed(ctx context.Context, accountID uuid.UUID, now time.Time) (bool, error)
	RecordUsage(ctx context.Context, accountID uuid.UUID, now time.Time) (int, error)
	UsageStatus(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.UsageStatusResponse, error)
}

type billingService struct {
	usageRepo repositories.UsageRepository
	subSvc    SubscriptionServiceInterface
	cfg       BillingConfig
}

func NewBillingService(usageRepo repositories.UsageRepository, subSvc SubscriptionServiceInterface, cfg BillingConfig) BillingServiceInterface {
	return &billingService{
		usageRepo: usageRepo,
		subSvc:    subSvc,
		cfg:       cfg,
	}
}

func (b *billingService) CanProceed(ctx context.Context, accountID uuid.UUID, now time.Time) (bool, error) {
	used, quota, err := b.currentUsage(ctx, accountID, now)
	if err != nil {
		return false, err
	}
	if used < quota {
		return true, nil
	}

	active, err := b.subSvc.IsActive(ctx, accountID, now)
	if err != nil {
		return false, err
	}
	return active, nil
}

func (b *billingService) RecordUsage(ctx context.Context, accountID uuid.UUID, now time.Time) (int, error) {
	count, err := b.usageRepo.Increment(ctx, accountID, utils.PeriodKey(now), 1, b.cfg.FreeQuota)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (b *billingService) UsageStatus(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.UsageStatusResponse, error) {
	used, quota, err := b.currentUsage(ctx, accountID, now)
	if err != nil {
		return nil, err
	}

	status, err := b.subSvc.GetStatus(ctx, accountID, now)
	if err != nil {
		return nil, err
	}

	remaining := quota - used
	if remaining < 0 {
		remaining = 0
	}

	return &response_models.UsageStatusResponse{
		SubscriptionStatus: status.Status,
		PlanCode:           status.PlanCode,
		PeriodEnd:          status.PeriodEnd,
		PeriodKey:          utils.PeriodKey(now),
		FreeQuota:          quota,
		Used:               used,
		Remaining:          remaining,
	}, nil
}

func (b *billingService) currentUsage(ctx context.Context, accountID uuid.UUID, now time.Time) (used, quota int, err error) {
	rec, err := b.usageRepo.GetRecord(ctx, accountID, utils.PeriodKey(now))
	if err != nil {
		return 0, 0, utils.ErrDatabaseError
	}
	if rec == nil {
		return 0, b.cfg.FreeQuota, nil
	}
	return rec.Count, rec.FreeQuota, nil
}

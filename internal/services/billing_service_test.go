package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillingFixture(quota int) (BillingServiceInterface, *fakeUsageRepo, *fakeSubRepo) {
	usageRepo := newFakeUsageRepo()
	subRepo := newFakeSubRepo()
	subSvc := NewSubscriptionService(subRepo, "intasend")
	svc := NewBillingService(usageRepo, subSvc, BillingConfig{FreeQuota: quota})
	return svc, usageRepo, subRepo
}

func TestCanProceedWithZeroUsage(t *testing.T) {
	svc, _, _ := newBillingFixture(5)

	ok, err := svc.CanProceed(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFreeQuotaAllowsFiveThenBlocks(t *testing.T) {
	svc, _, _ := newBillingFixture(5)
	accountID := uuid.New()
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		ok, err := svc.CanProceed(context.Background(), accountID, now)
		require.NoError(t, err)
		assert.True(t, ok, "action %d should be allowed", i+1)

		_, err = svc.RecordUsage(context.Background(), accountID, now)
		require.NoError(t, err)
	}

	ok, err := svc.CanProceed(context.Background(), accountID, now)
	require.NoError(t, err)
	assert.False(t, ok, "sixth action must be blocked")
}

func TestActiveSubscriptionBypassesQuota(t *testing.T) {
	svc, _, subRepo := newBillingFixture(5)
	accountID := uuid.New()
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		_, err := svc.RecordUsage(context.Background(), accountID, now)
		require.NoError(t, err)
	}

	ok, err := svc.CanProceed(context.Background(), accountID, now)
	require.NoError(t, err)
	require.False(t, ok)

	subSvc := NewSubscriptionService(subRepo, "intasend")
	_, err = subSvc.ActivateTx(nil, accountID, "monthly", now)
	require.NoError(t, err)

	ok, err = svc.CanProceed(context.Background(), accountID, now)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuotaResetsAcrossPeriods(t *testing.T) {
	svc, _, _ := newBillingFixture(5)
	accountID := uuid.New()
	september := time.Date(2025, 9, 30, 23, 59, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := svc.RecordUsage(context.Background(), accountID, september)
		require.NoError(t, err)
	}
	ok, err := svc.CanProceed(context.Background(), accountID, september)
	require.NoError(t, err)
	require.False(t, ok)

	october := september.Add(2 * time.Minute)
	ok, err = svc.CanProceed(context.Background(), accountID, october)
	require.NoError(t, err)
	assert.True(t, ok, "new calendar month starts a fresh counter")
}

func TestConcurrentRecordUsageLosesNoUpdates(t *testing.T) {
	svc, usageRepo, _ := newBillingFixture(5)
	accountID := uuid.New()
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RecordUsage(context.Background(), accountID, now)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := usageRepo.GetUsage(context.Background(), accountID, "2025-09")
	require.NoError(t, err)
	assert.Equal(t, workers, count)
}

func TestUsageStatusPayload(t *testing.T) {
	svc, _, subRepo := newBillingFixture(5)
	accountID := uuid.New()
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	status, err := svc.UsageStatus(context.Background(), accountID, now)
	require.NoError(t, err)
	assert.Equal(t, "none", status.SubscriptionStatus)
	assert.Equal(t, "2025-09", status.PeriodKey)
	assert.Equal(t, 5, status.FreeQuota)
	assert.Equal(t, 0, status.Used)
	assert.Equal(t, 5, status.Remaining)

	for i := 0; i < 7; i++ {
		_, err := svc.RecordUsage(context.Background(), accountID, now)
		require.NoError(t, err)
	}
	subSvc := NewSubscriptionService(subRepo, "intasend")
	_, err = subSvc.ActivateTx(nil, accountID, "monthly", now)
	require.NoError(t, err)

	status, err = svc.UsageStatus(context.Background(), accountID, now)
	require.NoError(t, err)
	assert.Equal(t, "active", status.SubscriptionStatus)
	assert.Equal(t, "monthly", status.PlanCode)
	assert.Equal(t, 7, status.Used)
	assert.Equal(t, 0, status.Remaining, "remaining never goes negative")
}

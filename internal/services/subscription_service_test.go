package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashlearn/internal/models/db_models"
)

func TestActivateCreatesThirtyDayWindow(t *testing.T) {
	repo := newFakeSubRepo()
	svc := NewSubscriptionService(repo, "intasend")
	accountID := uuid.New()
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

	sub, err := svc.ActivateTx(nil, accountID, "monthly", now)
	require.NoError(t, err)

	assert.Equal(t, db_models.SubStatusActive, sub.Status)
	assert.Equal(t, now.Unix(), sub.StartsAt)
	assert.Equal(t, now.Add(30*24*time.Hour).Unix(), sub.EndsAt)
}

func TestReactivationStacksOntoCurrentWindow(t *testing.T) {
	repo := newFakeSubRepo()
	svc := NewSubscriptionService(repo, "intasend")
	accountID := uuid.New()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ActivateTx(nil, accountID, "monthly", start)
	require.NoError(t, err)

	// Pay again with 10 days left; the new window extends the old one.
	renewAt := start.Add(20 * 24 * time.Hour)
	sub, err := svc.ActivateTx(nil, accountID, "monthly", renewAt)
	require.NoError(t, err)

	wantEnd := start.Add(60 * 24 * time.Hour).Unix()
	assert.Equal(t, wantEnd, sub.EndsAt)

	left := time.Unix(sub.EndsAt, 0).Sub(renewAt)
	assert.Equal(t, 40*24*time.Hour, left)
}

func TestReactivationAfterExpiryResetsFromNow(t *testing.T) {
	repo := newFakeSubRepo()
	svc := NewSubscriptionService(repo, "intasend")
	accountID := uuid.New()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ActivateTx(nil, accountID, "monthly", start)
	require.NoError(t, err)

	renewAt := start.Add(90 * 24 * time.Hour)
	sub, err := svc.ActivateTx(nil, accountID, "monthly", renewAt)
	require.NoError(t, err)

	assert.Equal(t, renewAt.Unix(), sub.StartsAt)
	assert.Equal(t, renewAt.Add(30*24*time.Hour).Unix(), sub.EndsAt)
}

func TestStatusDerivedAtReadTime(t *testing.T) {
	repo := newFakeSubRepo()
	svc := NewSubscriptionService(repo, "intasend")
	accountID := uuid.New()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ActivateTx(nil, accountID, "monthly", start)
	require.NoError(t, err)

	during, err := svc.GetStatus(context.Background(), accountID, start.Add(10*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "active", during.Status)
	assert.Equal(t, "monthly", during.PlanCode)

	// Exactly at EndsAt the subscription no longer covers the instant.
	atEnd, err := svc.GetStatus(context.Background(), accountID, start.Add(30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "expired", atEnd.Status)
}

func TestStatusNoneWithoutSubscription(t *testing.T) {
	svc := NewSubscriptionService(newFakeSubRepo(), "intasend")

	status, err := svc.GetStatus(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "none", status.Status)
	assert.Empty(t, status.PlanCode)

	active, err := svc.IsActive(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.False(t, active)
}

func TestIsActiveBoundary(t *testing.T) {
	repo := newFakeSubRepo()
	svc := NewSubscriptionService(repo, "intasend")
	accountID := uuid.New()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ActivateTx(nil, accountID, "monthly", start)
	require.NoError(t, err)

	end := start.Add(30 * 24 * time.Hour)

	active, err := svc.IsActive(context.Background(), accountID, end.Add(-time.Second))
	require.NoError(t, err)
	assert.True(t, active)

	active, err = svc.IsActive(context.Background(), accountID, end)
	require.NoError(t, err)
	assert.False(t, active)
}

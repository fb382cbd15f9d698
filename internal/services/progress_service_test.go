package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/request_models"
	"flashlearn/pkg/utils"
)

type progressFixture struct {
	svc          ProgressServiceInterface
	progressRepo *fakeProgressRepo
	statsRepo    *fakeStatsRepo
	accountID    uuid.UUID
	deckID       uuid.UUID
	cardID       uuid.UUID
}

func newProgressFixture() *progressFixture {
	progressRepo := newFakeProgressRepo()
	statsRepo := newFakeStatsRepo()
	deckRepo := newFakeDeckRepo()
	cardRepo := newFakeCardRepo()

	accountID := uuid.New()
	deck := &db_models.Deck{AccountID: accountID, Title: "Biology"}
	_ = deckRepo.Insert(context.Background(), deck)
	cardRepo.ownerOf[deck.ID] = accountID

	card := &db_models.Flashcard{DeckID: deck.ID, FrontText: "Q", BackText: "A"}
	_ = cardRepo.Insert(context.Background(), card)

	return &progressFixture{
		svc:          NewProgressService(progressRepo, cardRepo, deckRepo, statsRepo),
		progressRepo: progressRepo,
		statsRepo:    statsRepo,
		accountID:    accountID,
		deckID:       deck.ID,
		cardID:       card.ID,
	}
}

func (f *progressFixture) record(t *testing.T, correct bool, minutes float64) {
	t.Helper()
	_, err := f.svc.RecordProgress(context.Background(), f.accountID, request_models.RecordProgressRequest{
		DeckID:      f.deckID.String(),
		FlashcardID: f.cardID.String(),
		WasCorrect:  correct,
		TimeSpent:   minutes,
	})
	require.NoError(t, err)
}

func TestRecordProgressAccumulates(t *testing.T) {
	f := newProgressFixture()

	f.record(t, true, 1.5)
	f.record(t, false, 0.5)

	entry, err := f.progressRepo.FindByAccountAndFlashcard(context.Background(), f.accountID, f.cardID)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, 2, entry.StudyCount)
	assert.Equal(t, 1, entry.CorrectAttempts)
	assert.Equal(t, 1, entry.IncorrectAttempts)
	assert.InDelta(t, 2.0, entry.TotalStudyTime, 1e-9)
	assert.NotZero(t, entry.LastStudiedAt)
	assert.Greater(t, entry.NextReviewAt, entry.LastStudiedAt)
}

func TestThreeCorrectAnswersMasterACard(t *testing.T) {
	f := newProgressFixture()

	f.record(t, true, 1)
	f.record(t, true, 1)

	entry, _ := f.progressRepo.FindByAccountAndFlashcard(context.Background(), f.accountID, f.cardID)
	assert.Equal(t, db_models.ReviewStatusReviewing, entry.ReviewStatus)
	assert.False(t, entry.IsLearned)

	f.record(t, true, 1)

	entry, _ = f.progressRepo.FindByAccountAndFlashcard(context.Background(), f.accountID, f.cardID)
	assert.Equal(t, db_models.ReviewStatusMastered, entry.ReviewStatus)
	assert.True(t, entry.IsLearned)

	stats, err := f.statsRepo.GetOrCreate(context.Background(), f.accountID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CardsMastered)
	assert.InDelta(t, 100.0, stats.Accuracy, 1e-9)
}

func TestWrongAnswerResetsInterval(t *testing.T) {
	f := newProgressFixture()

	f.record(t, true, 1)
	f.record(t, true, 1)

	entry, _ := f.progressRepo.FindByAccountAndFlashcard(context.Background(), f.accountID, f.cardID)
	assert.Equal(t, 4.0, entry.Interval)

	f.record(t, false, 1)

	entry, _ = f.progressRepo.FindByAccountAndFlashcard(context.Background(), f.accountID, f.cardID)
	assert.Equal(t, 1.0, entry.Interval)
}

func TestRecordProgressRejectsForeignCard(t *testing.T) {
	f := newProgressFixture()

	_, err := f.svc.RecordProgress(context.Background(), uuid.New(), request_models.RecordProgressRequest{
		DeckID:      f.deckID.String(),
		FlashcardID: f.cardID.String(),
		WasCorrect:  true,
	})
	assert.ErrorIs(t, err, utils.ErrFlashcardNotFound)
}

func TestRecordProgressRejectsMismatchedDeck(t *testing.T) {
	f := newProgressFixture()

	_, err := f.svc.RecordProgress(context.Background(), f.accountID, request_models.RecordProgressRequest{
		DeckID:      uuid.NewString(),
		FlashcardID: f.cardID.String(),
		WasCorrect:  true,
	})
	assert.ErrorIs(t, err, utils.ErrFlashcardNotFound)
}

func TestListProgressFilters(t *testing.T) {
	f := newProgressFixture()
	f.record(t, true, 1)

	all, err := f.svc.ListProgress(context.Background(), f.accountID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byDeck, err := f.svc.ListProgress(context.Background(), f.accountID, &f.deckID, nil)
	require.NoError(t, err)
	assert.Len(t, byDeck, 1)

	other := uuid.New()
	none, err := f.svc.ListProgress(context.Background(), f.accountID, &other, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

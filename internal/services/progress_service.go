package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/request_models"
	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

// masteredThreshold is the spaced-repetition heuristic: a card with this many
// correct attempts counts as mastered.
const masteredThreshold = 3

type ProgressServiceInterface interface {
	RecordProgress(ctx context.Context, accountID uuid.UUID, req request_models.RecordProgressRequest) (*response_models.ProgressResponse, error)
	ListProgress(ctx context.Context, accountID uuid.UUID, deckID, flashcardID *uuid.UUID) ([]response_models.ProgressResponse, error)
}

type progressService struct {
	progressRepo repositories.ProgressRepository
	cardRepo     repositories.FlashcardRepository
	deckRepo     repositories.DeckRepository
	statsRepo    repositories.StatsRepository
}

func NewProgressService(
	progressRepo repositories.ProgressRepository,
	cardRepo repositories.FlashcardRepository,
	deckRepo repositories.DeckRepository,
	statsRepo repositories.StatsRepository,
) ProgressServiceInterface {
	return &progressService{
		progressRepo: progressRepo,
		cardRepo:     cardRepo,
		deckRepo:     deckRepo,
		statsRepo:    statsRepo,
	}
}

func (p *progressService) RecordProgress(ctx context.Context, accountID uuid.UUID, req request_models.RecordProgressRequest) (*response_models.ProgressResponse, error) {
	deckID, err := uuid.Parse(req.DeckID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	flashcardID, err := uuid.Parse(req.FlashcardID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	if req.TimeSpent < 0 {
		return nil, utils.ErrValidation
	}

	card, err := p.cardRepo.FindByIdForAccount(ctx, flashcardID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if card == nil {
		return nil, utils.ErrFlashcardNotFound
	}
	if card.DeckID != deckID {
		return nil, utils.ErrFlashcardNotFound
	}

	progress, err := p.progressRepo.FindByAccountAndFlashcard(ctx, accountID, flashcardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if progress == nil {
		progress = &db_models.Progress{
			AccountID:    accountID,
			DeckID:       deckID,
			FlashcardID:  flashcardID,
			ReviewStatus: db_models.ReviewStatusNew,
			Interval:     1,
		}
	}

	now := time.Now()
	progress.StudyCount++
	progress.TotalStudyTime += req.TimeSpent
	progress.LastStudiedAt = now.Unix()
	if req.WasCorrect {
		progress.CorrectAttempts++
	} else {
		progress.IncorrectAttempts++
	}

	applyReviewHeuristic(progress, req.WasCorrect, now)

	if err := p.progressRepo.Upsert(ctx, progress); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := p.recomputeStats(ctx, accountID); err != nil {
		// Stats are best-effort aggregates; the study record already landed.
		log.Printf("progress: recompute stats for %s: %v", accountID, err)
	}

	return toProgressResponse(progress), nil
}

func (p *progressService) ListProgress(ctx context.Context, accountID uuid.UUID, deckID, flashcardID *uuid.UUID) ([]response_models.ProgressResponse, error) {
	entries, err := p.progressRepo.ListByAccount(ctx, accountID, deckID, flashcardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ProgressResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toProgressResponse(&entries[i]))
	}
	return out, nil
}

// applyReviewHeuristic advances the review state and schedules the next
// review. A wrong answer shrinks the interval and drops the card back to
// learning; repeated correct answers grow it until the card is mastered.
func applyReviewHeuristic(progress *db_models.Progress, wasCorrect bool, now time.Time) {
	if wasCorrect {
		progress.Interval *= 2
		if progress.Interval > 30 {
			progress.Interval = 30
		}
	} else {
		progress.Interval = 1
	}

	switch {
	case progress.CorrectAttempts >= masteredThreshold:
		progress.ReviewStatus = db_models.ReviewStatusMastered
		progress.IsLearned = true
	case progress.CorrectAttempts > 0:
		progress.ReviewStatus = db_models.ReviewStatusReviewing
	default:
		progress.ReviewStatus = db_models.ReviewStatusLearning
	}

	progress.NextReviewAt = now.Add(time.Duration(progress.Interval*24) * time.Hour).Unix()
}

func (p *progressService) recomputeStats(ctx context.Context, accountID uuid.UUID) error {
	agg, err := p.progressRepo.Aggregates(ctx, accountID)
	if err != nil {
		return err
	}
	mastered, err := p.progressRepo.CountMastered(ctx, accountID)
	if err != nil {
		return err
	}

	stats, err := p.statsRepo.GetOrCreate(ctx, accountID)
	if err != nil {
		return err
	}

	if agg.TotalAttempts > 0 {
		accuracy := float64(agg.TotalCorrect) / float64(agg.TotalAttempts) * 100
		stats.Accuracy = accuracy
		stats.MasteryLevel = accuracy
		stats.RetentionRate = accuracy

		avgTime := agg.TotalStudyTime / float64(agg.TotalAttempts)
		focus := avgTime / 1.0 * 100
		if focus > 100 {
			focus = 100
		}
		stats.FocusScore = focus
	}
	stats.CardsMastered = int(mastered)

	return p.statsRepo.Save(ctx, stats)
}

func toProgressResponse(progress *db_models.Progress) *response_models.ProgressResponse {
	return &response_models.ProgressResponse{
		ID:                progress.ID.String(),
		DeckID:            progress.DeckID.String(),
		FlashcardID:       progress.FlashcardID.String(),
		StudyCount:        progress.StudyCount,
		CorrectAttempts:   progress.CorrectAttempts,
		IncorrectAttempts: progress.IncorrectAttempts,
		TotalStudyTime:    progress.TotalStudyTime,
		LastStudiedAt:     utils.FormatRFC3339UTC(utils.FromUnixSecondsUTC(progress.LastStudiedAt)),
		NextReviewAt:      utils.FormatRFC3339UTC(utils.FromUnixSecondsUTC(progress.NextReviewAt)),
		ReviewStatus:      string(progress.ReviewStatus),
		IsLearned:         progress.IsLearned,
	}
}

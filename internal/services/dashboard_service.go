package services

import (
	"context"

	"github.com/google/uuid"

	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	dashboardRepo repositories.DashboardRepository
	progressRepo  repositories.ProgressRepository
	accountRepo   repositories.AccountRepository
	statsRepo     repositories.StatsRepository
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepository,
	progressRepo repositories.ProgressRepository,
	accountRepo repositories.AccountRepository,
	statsRepo repositories.StatsRepository,
) DashboardServiceInterface {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		progressRepo:  progressRepo,
		accountRepo:   accountRepo,
		statsRepo:     statsRepo,
	}
}

func (d *dashboardService) GetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error) {
	account, err := d.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	decks, err := d.dashboardRepo.ListDecks(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	studied, err := d.progressRepo.StudiedPerDeck(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats, err := d.statsRepo.GetOrCreate(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	deckItems := make([]response_models.DashboardDeck, 0, len(decks))
	total := 0
	mostReviewed := ""
	mostReviewedCount := 0
	for i := range decks {
		count := studied[decks[i].ID]
		total += count
		if count > mostReviewedCount {
			mostReviewedCount = count
			mostReviewed = decks[i].Title
		}
		deckItems = append(deckItems, response_models.DashboardDeck{
			DeckID:            decks[i].ID.String(),
			DeckTitle:         decks[i].Title,
			FlashcardsStudied: count,
		})
	}

	return &response_models.DashboardResponse{
		Username:               account.Username,
		TotalFlashcardsStudied: total,
		MostReviewedDeck:       mostReviewed,
		WeeklyGoal:             stats.WeeklyGoal,
		MasteryLevel:           stats.MasteryLevel,
		StudyStreak:            stats.StudyStreak,
		FocusScore:             stats.FocusScore,
		RetentionRate:          stats.RetentionRate,
		CardsMastered:          stats.CardsMastered,
		MinutesPerDay:          stats.MinutesPerDay,
		Accuracy:               stats.Accuracy,
		Decks:                  deckItems,
	}, nil
}

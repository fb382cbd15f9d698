package services

import (
	"context"

	"github.com/google/uuid"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/request_models"
	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

type StatsServiceInterface interface {
	GetStats(ctx context.Context, accountID uuid.UUID) (*response_models.StatsResponse, error)
	UpdateStats(ctx context.Context, accountID uuid.UUID, req request_models.UpdateStatsRequest) (*response_models.StatsResponse, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context, accountID uuid.UUID) (*response_models.StatsResponse, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toStatsResponse(stats), nil
}

// UpdateStats applies a partial update; absent fields keep their values.
func (s *statsService) UpdateStats(ctx context.Context, accountID uuid.UUID, req request_models.UpdateStatsRequest) (*response_models.StatsResponse, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if req.WeeklyGoal != nil {
		stats.WeeklyGoal = *req.WeeklyGoal
	}
	if req.MasteryLevel != nil {
		stats.MasteryLevel = *req.MasteryLevel
	}
	if req.StudyStreak != nil {
		stats.StudyStreak = *req.StudyStreak
	}
	if req.FocusScore != nil {
		stats.FocusScore = *req.FocusScore
	}
	if req.RetentionRate != nil {
		stats.RetentionRate = *req.RetentionRate
	}
	if req.CardsMastered != nil {
		stats.CardsMastered = *req.CardsMastered
	}
	if req.MinutesPerDay != nil {
		stats.MinutesPerDay = *req.MinutesPerDay
	}
	if req.Accuracy != nil {
		stats.Accuracy = *req.Accuracy
	}

	if err := s.statsRepo.Save(ctx, stats); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toStatsResponse(stats), nil
}

func toStatsResponse(stats *db_models.AccountStats) *response_models.StatsResponse {
	return &response_models.StatsResponse{
		WeeklyGoal:    stats.WeeklyGoal,
		MasteryLevel:  stats.MasteryLevel,
		StudyStreak:   stats.StudyStreak,
		FocusScore:    stats.FocusScore,
		RetentionRate: stats.RetentionRate,
		CardsMastered: stats.CardsMastered,
		MinutesPerDay: stats.MinutesPerDay,
		Accuracy:      stats.Accuracy,
	}
}

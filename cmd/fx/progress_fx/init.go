package progress_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flashlearn/internal/repositories"
	"flashlearn/internal/services"
)

var Module = fx.Provide(
	provideProgressService, provideStatsService,
	provideProgressRepo, provideStatsRepo)

func provideProgressRepo(db *gorm.DB) repositories.ProgressRepository {
	return repositories.NewProgressRepository(db)
}

func provideStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}

func provideProgressService(
	progressRepo repositories.ProgressRepository,
	cardRepo repositories.FlashcardRepository,
	deckRepo repositories.DeckRepository,
	statsRepo repositories.StatsRepository,
) services.ProgressServiceInterface {
	return services.NewProgressService(progressRepo, cardRepo, deckRepo, statsRepo)
}

func provideStatsService(statsRepo repositories.StatsRepository) services.StatsServiceInterface {
	return services.NewStatsService(statsRepo)
}

package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flashlearn/internal/repositories"
	"flashlearn/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideDashboardRepo)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	progressRepo repositories.ProgressRepository,
	accountRepo repositories.AccountRepository,
	statsRepo repositories.StatsRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, progressRepo, accountRepo, statsRepo)
}

package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flashlearn/internal/repositories"
	"flashlearn/internal/services"
)

var Module = fx.Provide(
	provideBillingService, provideSubscriptionService, providePlanService,
	provideUsageRepo, provideSubscriptionRepo, providePlanRepo)

func provideUsageRepo(db *gorm.DB) repositories.UsageRepository {
	return repositories.NewUsageRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideSubscriptionService(subRepo repositories.SubscriptionRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, "intasend")
}

func provideBillingService(usageRepo repositories.UsageRepository, subSvc services.SubscriptionServiceInterface) services.BillingServiceInterface {
	return services.NewBillingService(usageRepo, subSvc, services.BillingConfigFromEnv())
}

func providePlanService(planRepo repositories.PlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

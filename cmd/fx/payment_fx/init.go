package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flashlearn/internal/repositories"
	"flashlearn/internal/services"
	"flashlearn/pkg/intasend"
)

var Module = fx.Provide(
	providePaymentService, provideTransactionRepo, provideCheckoutClient)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideCheckoutClient() services.CheckoutClient {
	return intasend.NewClient(intasend.ConfigFromEnv())
}

func providePaymentService(
	txnRepo repositories.TransactionRepository,
	planRepo repositories.PlanRepository,
	subSvc services.SubscriptionServiceInterface,
	client services.CheckoutClient,
) services.PaymentServiceInterface {
	return services.NewPaymentService(txnRepo, planRepo, subSvc, client, "intasend")
}

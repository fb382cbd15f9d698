package controllers_fx

import (
	"go.uber.org/fx"

	"flashlearn/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDeckController),
	fx.Provide(controllers.NewFlashcardController),
	fx.Provide(controllers.NewProgressController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewBillingController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewGenerationController))

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flashlearn/cmd/fx/account_fx"
	"flashlearn/cmd/fx/ai_fx"
	"flashlearn/cmd/fx/billing_fx"
	"flashlearn/cmd/fx/controllers_fx"
	"flashlearn/cmd/fx/dashboard_fx"
	"flashlearn/cmd/fx/db_fx"
	"flashlearn/cmd/fx/deck_fx"
	"flashlearn/cmd/fx/flashcard_fx"
	"flashlearn/cmd/fx/payment_fx"
	"flashlearn/cmd/fx/progress_fx"
	"flashlearn/internal/api/controllers"
	"flashlearn/internal/infra"
	"flashlearn/pkg/middleware"
	"flashlearn/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		deck_fx.Module,
		flashcard_fx.Module,
		progress_fx.Module,
		dashboard_fx.Module,
		billing_fx.Module,
		payment_fx.Module,
		ai_fx.Module,
		controllers_fx.Module,

		fx.Invoke(PrepareSchema),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func PrepareSchema(db *gorm.DB) {
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := infra.SeedPlans(db); err != nil {
		log.Fatalf("Failed to seed plans: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	deckController *controllers.DeckController,
	flashcardController *controllers.FlashcardController,
	progressController *controllers.ProgressController,
	dashboardController *controllers.DashboardController,
	billingController *controllers.BillingController,
	paymentController *controllers.PaymentController,
	generationController *controllers.GenerationController,
	db *gorm.DB) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		deckController,
		flashcardController,
		progressController,
		dashboardController,
		billingController,
		paymentController,
		generationController,
		db)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	deckController *controllers.DeckController,
	flashcardController *controllers.FlashcardController,
	progressController *controllers.ProgressController,
	dashboardController *controllers.DashboardController,
	billingController *controllers.BillingController,
	paymentController *controllers.PaymentController,
	generationController *controllers.GenerationController,
	db *gorm.DB) {

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.GET("/db-ping", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, "Database unreachable")
			return
		}
		utils.RespondSuccess(c, gin.H{"database": "ok"}, "")
	})

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	plansGroup := r.Group("/plans")
	plansGroup.GET("", billingController.Plans)

	// Provider callbacks carry their own verification secret, so the webhook
	// stays outside the authenticated group.
	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("/webhook", paymentController.Webhook)
	paymentsGroup.POST("/create-checkout", middleware.JWTAuthMiddleware(), paymentController.CreateCheckout)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	decksGroup := authed.Group("decks")
	decksGroup.POST("", deckController.Create)
	decksGroup.GET("", deckController.List)
	decksGroup.GET("/:id", deckController.Get)
	decksGroup.PUT("/:id", deckController.Update)
	decksGroup.DELETE("/:id", deckController.Delete)
	decksGroup.GET("/:id/flashcards", flashcardController.ListByDeck)

	flashcardsGroup := authed.Group("flashcards")
	flashcardsGroup.POST("", flashcardController.Create)
	flashcardsGroup.GET("/:id", flashcardController.Get)
	flashcardsGroup.PUT("/:id", flashcardController.Update)
	flashcardsGroup.DELETE("/:id", flashcardController.Delete)

	progressGroup := authed.Group("progress")
	progressGroup.POST("", progressController.Record)
	progressGroup.GET("", progressController.List)
	progressGroup.GET("/deck/:id", progressController.ListByDeck)
	progressGroup.GET("/flashcard/:id", progressController.ListByFlashcard)

	statsGroup := authed.Group("user/stats")
	statsGroup.GET("", progressController.GetStats)
	statsGroup.PUT("", progressController.UpdateStats)

	authed.GET("dashboard", dashboardController.Get)
	authed.GET("billing/status", billingController.Status)
	authed.POST("ai/generate", generationController.Generate)
}

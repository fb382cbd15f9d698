package infra

import (
	"log"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"flashlearn/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Deck{},
		&db_models.Flashcard{},
		&db_models.Progress{},
		&db_models.AccountStats{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.PaymentTransaction{},
		&db_models.UsageRecord{},
		&db_models.AIGeneration{},
	)
}

// SeedPlans upserts the prototype monthly plan. Price comes from the server
// environment, never from a request.
func SeedPlans(db *gorm.DB) error {
	price := int64(10000) // KES 100.00
	if raw := os.Getenv("PLAN_MONTHLY_PRICE_MINOR"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			price = v
		}
	}
	currency := os.Getenv("PLAN_CURRENCY")
	if currency == "" {
		currency = "KES"
	}

	plan := db_models.Plan{
		Code:       "monthly",
		Name:       "FlashLearn Monthly",
		Period:     db_models.PeriodMonth,
		PriceMinor: price,
		Currency:   currency,
		IsActive:   true,
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_minor", "currency", "is_active"}),
	}).Create(&plan).Error
}

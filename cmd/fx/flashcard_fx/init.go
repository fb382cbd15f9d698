package flashcard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flashlearn/internal/repositories"
	"flashlearn/internal/services"
)

var Module = fx.Provide(
	provideFlashcardService, provideFlashcardRepo)

func provideFlashcardRepo(db *gorm.DB) repositories.FlashcardRepository {
	return repositories.NewFlashcardRepository(db)
}

func provideFlashcardService(cardRepo repositories.FlashcardRepository, deckRepo repositories.DeckRepository) services.FlashcardServiceInterface {
	return services.NewFlashcardService(cardRepo, deckRepo)
}

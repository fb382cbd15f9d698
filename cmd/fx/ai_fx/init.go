package ai_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flashlearn/internal/repositories"
	"flashlearn/internal/services"
	"flashlearn/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationService, provideGenerationRepo, provideChatClient)

func provideGenerationRepo(db *gorm.DB) repositories.GenerationRepository {
	return repositories.NewGenerationRepository(db)
}

func provideChatClient() utils.ChatClientInterface {
	return utils.NewChatClient()
}

func provideGenerationService(
	genRepo repositories.GenerationRepository,
	deckRepo repositories.DeckRepository,
	cardRepo repositories.FlashcardRepository,
	billingSvc services.BillingServiceInterface,
	chat utils.ChatClientInterface,
) services.GenerationServiceInterface {
	return services.NewGenerationService(genRepo, deckRepo, cardRepo, billingSvc, chat)
}

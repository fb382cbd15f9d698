package deck_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flashlearn/internal/repositories"
	"flashlearn/internal/services"
)

var Module = fx.Provide(
	provideDeckService, provideDeckRepo)

func provideDeckRepo(db *gorm.DB) repositories.DeckRepository {
	return repositories.NewDeckRepository(db)
}

func provideDeckService(deckRepo repositories.DeckRepository) services.DeckServiceInterface {
	return services.NewDeckService(deckRepo)
}

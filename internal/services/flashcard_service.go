package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/request_models"
	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

type FlashcardServiceInterface interface {
	CreateFlashcard(ctx context.Context, accountID uuid.UUID, req request_models.CreateFlashcardRequest) (*response_models.FlashcardResponse, error)
	UpdateFlashcard(ctx context.Context, accountID, cardID uuid.UUID, req request_models.UpdateFlashcardRequest) (*response_models.FlashcardResponse, error)
	DeleteFlashcard(ctx context.Context, accountID, cardID uuid.UUID) error
	GetFlashcard(ctx context.Context, accountID, cardID uuid.UUID) (*response_models.FlashcardResponse, error)
	ListByDeck(ctx context.Context, accountID, deckID uuid.UUID, page, perPage int) (*response_models.FlashcardListResponse, error)
}

type flashcardService struct {
	cardRepo repositories.FlashcardRepository
	deckRepo repositories.DeckRepository
}

func NewFlashcardService(cardRepo repositories.FlashcardRepository, deckRepo repositories.DeckRepository) FlashcardServiceInterface {
	return &flashcardService{cardRepo: cardRepo, deckRepo: deckRepo}
}

func (f *flashcardService) CreateFlashcard(ctx context.Context, accountID uuid.UUID, req request_models.CreateFlashcardRequest) (*response_models.FlashcardResponse, error) {
	deckID, err := uuid.Parse(req.DeckID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	deck, err := f.deckRepo.FindByIdForAccount(ctx, deckID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if deck == nil {
		return nil, utils.ErrDeckNotFound
	}

	card := &db_models.Flashcard{
		DeckID:    deck.ID,
		FrontText: strings.TrimSpace(req.FrontText),
		BackText:  strings.TrimSpace(req.BackText),
	}

	if err := f.cardRepo.Insert(ctx, card); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toFlashcardResponse(card), nil
}

func (f *flashcardService) UpdateFlashcard(ctx context.Context, accountID, cardID uuid.UUID, req request_models.UpdateFlashcardRequest) (*response_models.FlashcardResponse, error) {
	card, err := f.cardRepo.FindByIdForAccount(ctx, cardID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if card == nil {
		return nil, utils.ErrFlashcardNotFound
	}

	if req.FrontText != nil {
		card.FrontText = strings.TrimSpace(*req.FrontText)
	}
	if req.BackText != nil {
		card.BackText = strings.TrimSpace(*req.BackText)
	}

	if err := f.cardRepo.Update(ctx, card); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toFlashcardResponse(card), nil
}

func (f *flashcardService) DeleteFlashcard(ctx context.Context, accountID, cardID uuid.UUID) error {
	card, err := f.cardRepo.FindByIdForAccount(ctx, cardID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if card == nil {
		return utils.ErrFlashcardNotFound
	}

	if err := f.cardRepo.Delete(ctx, card); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *flashcardService) GetFlashcard(ctx context.Context, accountID, cardID uuid.UUID) (*response_models.FlashcardResponse, error) {
	card, err := f.cardRepo.FindByIdForAccount(ctx, cardID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if card == nil {
		return nil, utils.ErrFlashcardNotFound
	}

	return toFlashcardResponse(card), nil
}

func (f *flashcardService) ListByDeck(ctx context.Context, accountID, deckID uuid.UUID, page, perPage int) (*response_models.FlashcardListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if perPage < 1 || perPage > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	deck, err := f.deckRepo.FindByIdForAccount(ctx, deckID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if deck == nil {
		return nil, utils.ErrDeckNotFound
	}

	cards, total, err := f.cardRepo.ListByDeck(ctx, deckID, page, perPage)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.FlashcardResponse, 0, len(cards))
	for i := range cards {
		items = append(items, *toFlashcardResponse(&cards[i]))
	}

	pagination := response_models.NewPagination(page, perPage, total)
	return &response_models.FlashcardListResponse{
		Items:      items,
		Pagination: &pagination,
	}, nil
}

func toFlashcardResponse(card *db_models.Flashcard) *response_models.FlashcardResponse {
	return &response_models.FlashcardResponse{
		ID:        card.ID.String(),
		DeckID:    card.DeckID.String(),
		FrontText: card.FrontText,
		BackText:  card.BackText,
		CreatedAt: utils.FormatRFC3339UTC(utils.FromUnixSecondsUTC(card.CreatedAt)),
		UpdatedAt: utils.FormatRFC3339UTC(utils.FromUnixSecondsUTC(card.UpdatedAt)),
	}
}

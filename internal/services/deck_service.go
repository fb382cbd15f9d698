package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/request_models"
	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

type DeckServiceInterface interface {
	CreateDeck(ctx context.Context, accountID uuid.UUID, req request_models.CreateDeckRequest) (*response_models.DeckResponse, error)
	UpdateDeck(ctx context.Context, accountID, deckID uuid.UUID, req request_models.UpdateDeckRequest) (*response_models.DeckResponse, error)
	DeleteDeck(ctx context.Context, accountID, deckID uuid.UUID) error
	GetDeck(ctx context.Context, accountID, deckID uuid.UUID) (*response_models.DeckResponse, error)
	ListDecks(ctx context.Context, accountID uuid.UUID, page, perPage int) (*response_models.DeckListResponse, error)
}

type deckService struct {
	deckRepo repositories.DeckRepository
}

func NewDeckService(deckRepo repositories.DeckRepository) DeckServiceInterface {
	return &deckService{deckRepo: deckRepo}
}

func (d *deckService) CreateDeck(ctx context.Context, accountID uuid.UUID, req request_models.CreateDeckRequest) (*response_models.DeckResponse, error) {
	difficulty, err := ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}

	deck := &db_models.Deck{
		AccountID:   accountID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Subject:     strings.TrimSpace(req.Subject),
		Category:    strings.TrimSpace(req.Category),
		Difficulty:  difficulty,
	}

	if err := d.deckRepo.Insert(ctx, deck); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toDeckResponse(deck), nil
}

func (d *deckService) UpdateDeck(ctx context.Context, accountID, deckID uuid.UUID, req request_models.UpdateDeckRequest) (*response_models.DeckResponse, error) {
	deck, err := d.deckRepo.FindByIdForAccount(ctx, deckID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if deck == nil {
		return nil, utils.ErrDeckNotFound
	}

	if req.Title != nil {
		deck.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		deck.Description = strings.TrimSpace(*req.Description)
	}
	if req.Subject != nil {
		deck.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Category != nil {
		deck.Category = strings.TrimSpace(*req.Category)
	}
	if req.Difficulty != nil {
		difficulty, err := ParseDifficulty(req.Difficulty)
		if err != nil {
			return nil, err
		}
		deck.Difficulty = difficulty
	}

	if err := d.deckRepo.Update(ctx, deck); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toDeckResponse(deck), nil
}

func (d *deckService) DeleteDeck(ctx context.Context, accountID, deckID uuid.UUID) error {
	deck, err := d.deckRepo.FindByIdForAccount(ctx, deckID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if deck == nil {
		return utils.ErrDeckNotFound
	}

	if err := d.deckRepo.Delete(ctx, deck); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (d *deckService) GetDeck(ctx context.Context, accountID, deckID uuid.UUID) (*response_models.DeckResponse, error) {
	deck, err := d.deckRepo.FindByIdForAccount(ctx, deckID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if deck == nil {
		return nil, utils.ErrDeckNotFound
	}

	return toDeckResponse(deck), nil
}

func (d *deckService) ListDecks(ctx context.Context, accountID uuid.UUID, page, perPage int) (*response_models.DeckListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if perPage < 1 || perPage > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	decks, total, err := d.deckRepo.ListByAccount(ctx, accountID, page, perPage)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.DeckResponse, 0, len(decks))
	for i := range decks {
		items = append(items, *toDeckResponse(&decks[i]))
	}

	return &response_models.DeckListResponse{
		Items:      items,
		Pagination: response_models.NewPagination(page, perPage, total),
	}, nil
}

// ParseDifficulty accepts either a numeric level or a difficulty name and
// normalizes it to 1..5.
func ParseDifficulty(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, fmt.Errorf("%w: difficulty is required", utils.ErrValidation)
	case float64: // JSON numbers decode as float64
		n := int(v)
		if float64(n) != v || n < 1 || n > 5 {
			return 0, fmt.Errorf("%w: difficulty must be an integer between 1 and 5", utils.ErrValidation)
		}
		return n, nil
	case int:
		if v < 1 || v > 5 {
			return 0, fmt.Errorf("%w: difficulty must be between 1 and 5", utils.ErrValidation)
		}
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "beginner", "easy":
			return 1, nil
		case "elementary":
			return 2, nil
		case "intermediate", "medium":
			return 3, nil
		case "advanced", "hard":
			return 4, nil
		case "expert":
			return 5, nil
		default:
			return 0, fmt.Errorf("%w: unknown difficulty %q", utils.ErrValidation, v)
		}
	default:
		return 0, fmt.Errorf("%w: difficulty must be a number or a name", utils.ErrValidation)
	}
}

func toDeckResponse(deck *db_models.Deck) *response_models.DeckResponse {
	return &response_models.DeckResponse{
		ID:          deck.ID.String(),
		Title:       deck.Title,
		Description: deck.Description,
		Subject:     deck.Subject,
		Category:    deck.Category,
		Difficulty:  deck.Difficulty,
		CreatedAt:   utils.FormatRFC3339UTC(utils.FromUnixSecondsUTC(deck.CreatedAt)),
		UpdatedAt:   utils.FormatRFC3339UTC(utils.FromUnixSecondsUTC(deck.UpdatedAt)),
	}
}

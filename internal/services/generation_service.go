package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/request_models"
	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

const (
	minSourceLength = 30
	minCardCount    = 3
	maxCardCount    = 50
	defaultCount    = 12
	excerptLength   = 500
)

type GenerationServiceInterface interface {
	GenerateFlashcards(ctx context.Context, accountID uuid.UUID, req request_models.GenerateFlashcardsRequest) (*response_models.GenerateFlashcardsResponse, error)
}

type generationService struct {
	genRepo    repositories.GenerationRepository
	deckRepo   repositories.DeckRepository
	cardRepo   repositories.FlashcardRepository
	billingSvc BillingServiceInterface
	chat       utils.ChatClientInterface
}

func NewGenerationService(
	genRepo repositories.GenerationRepository,
	deckRepo repositories.DeckRepository,
	cardRepo repositories.FlashcardRepository,
	billingSvc BillingServiceInterface,
	chat utils.ChatClientInterface,
) GenerationServiceInterface {
	return &generationService{
		genRepo:    genRepo,
		deckRepo:   deckRepo,
		cardRepo:   cardRepo,
		billingSvc: billingSvc,
		chat:       chat,
	}
}

// GenerateFlashcards runs the metered operation. The quota gate is checked
// up front, the provider call happens, and only a successful generation
// consumes a usage unit. A failed call never increments the counter.
func (g *generationService) GenerateFlashcards(ctx context.Context, accountID uuid.UUID, req request_models.GenerateFlashcardsRequest) (*response_models.GenerateFlashcardsResponse, error) {
	text := strings.TrimSpace(req.Text)
	if len(text) < minSourceLength {
		return nil, fmt.Errorf("%w: source text must be at least %d characters", utils.ErrValidation, minSourceLength)
	}

	count := req.Count
	if count == 0 {
		count = defaultCount
	}
	if count < minCardCount || count > maxCardCount {
		return nil, fmt.Errorf("%w: count must be between %d and %d", utils.ErrValidation, minCardCount, maxCardCount)
	}

	var deck *db_models.Deck
	if req.DeckID != "" {
		deckID, err := uuid.Parse(req.DeckID)
		if err != nil {
			return nil, utils.ErrValidation
		}
		deck, err = g.deckRepo.FindByIdForAccount(ctx, deckID, accountID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if deck == nil {
			return nil, utils.ErrDeckNotFound
		}
	}

	now := time.Now()
	ok, err := g.billingSvc.CanProceed(ctx, accountID, now)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !ok {
		return nil, utils.ErrQuotaExceeded
	}

	gen := &db_models.AIGeneration{
		AccountID:     accountID,
		SourceType:    "text",
		SourceExcerpt: excerpt(text),
		Status:        db_models.GenStatusQueued,
	}
	if deck != nil {
		gen.DeckID = &deck.ID
	}
	if err := g.genRepo.Insert(ctx, gen); err != nil {
		return nil, utils.ErrDatabaseError
	}

	cards, err := g.generateCards(ctx, text, count)
	if err != nil {
		gen.Status = db_models.GenStatusFailed
		if saveErr := g.genRepo.Save(ctx, gen); saveErr != nil {
			log.Printf("generation: save failed record %s: %v", gen.ID, saveErr)
		}
		log.Printf("generation: provider call for %s: %v", accountID, err)
		return nil, utils.ErrGenerationFailed
	}

	inserted := 0
	if deck != nil {
		batch := make([]db_models.Flashcard, 0, len(cards))
		for _, c := range cards {
			batch = append(batch, db_models.Flashcard{
				DeckID:    deck.ID,
				FrontText: c.Question,
				BackText:  c.Answer,
			})
		}
		if err := g.cardRepo.InsertBatch(ctx, batch); err != nil {
			return nil, utils.ErrDatabaseError
		}
		inserted = len(batch)
	}

	gen.Status = db_models.GenStatusComplete
	if out, err := json.Marshal(cards); err == nil {
		gen.Output = out
	}
	if err := g.genRepo.Save(ctx, gen); err != nil {
		log.Printf("generation: save record %s: %v", gen.ID, err)
	}

	// Usage is counted only after the generation succeeded. A failed
	// increment is a hard error: the action must never be admitted without
	// being recorded, even though the cards above stay inserted.
	if _, err := g.billingSvc.RecordUsage(ctx, accountID, now); err != nil {
		log.Printf("generation: record usage for %s: %v", accountID, err)
		return nil, err
	}

	resp := &response_models.GenerateFlashcardsResponse{
		GenerationID:  gen.ID.String(),
		Cards:         cards,
		InsertedCount: inserted,
	}
	if deck != nil {
		resp.DeckID = deck.ID.String()
	}
	return resp, nil
}

// generateCards calls the chat provider and parses its answer. On a parse
// failure it retries once with a stricter instruction before giving up.
func (g *generationService) generateCards(ctx context.Context, text string, count int) ([]response_models.GeneratedCard, error) {
	prompt := buildPrompt(text, count)

	raw, err := g.chat.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cards, parseErr := parseCards(raw, count)
	if parseErr == nil {
		return cards, nil
	}

	strict := prompt + "\n\nReturn ONLY the JSON array. No prose, no markdown fences."
	raw, err = g.chat.Complete(ctx, strict)
	if err != nil {
		return nil, err
	}
	return parseCards(raw, count)
}

func buildPrompt(text string, count int) string {
	return fmt.Sprintf(`Create exactly %d flashcards from the study material below.
Respond with a JSON array where each element is {"question": "...", "answer": "..."}.
Questions must be answerable from the material alone.

Material:
%s`, count, text)
}

// Models rarely stick to one schema; these are the key spellings seen in
// the wild for the two card fields.
var (
	questionKeys = []string{"question", "q", "front", "prompt"}
	answerKeys   = []string{"answer", "a", "back", "response", "explanation"}
)

// parseCards tolerates the usual model sloppiness: markdown fences, prose
// around the array, a wrapping {"cards": [...]} object, alias field names.
// It fails only when no usable cards can be recovered.
func parseCards(raw string, count int) ([]response_models.GeneratedCard, error) {
	cleaned := stripCodeFences(raw)

	items, ok := decodeCardList(cleaned)
	if !ok {
		salvaged, found := bestEffortJSON(cleaned)
		if !found {
			return nil, fmt.Errorf("unparseable completion: %s", excerpt(raw))
		}
		if items, ok = decodeCardList(salvaged); !ok {
			return nil, fmt.Errorf("unparseable completion: %s", excerpt(raw))
		}
	}

	cards := normalizeCards(items, count)
	if len(cards) == 0 {
		return nil, fmt.Errorf("completion contained no usable cards")
	}
	return cards, nil
}

func decodeCardList(s string) ([]map[string]any, bool) {
	var list []map[string]any
	if err := json.Unmarshal([]byte(s), &list); err == nil {
		return list, true
	}

	var wrapper struct {
		Cards []map[string]any `json:"cards"`
	}
	if err := json.Unmarshal([]byte(s), &wrapper); err == nil && wrapper.Cards != nil {
		return wrapper.Cards, true
	}

	return nil, false
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// bestEffortJSON extracts the outermost JSON array from text that surrounds
// it with prose.
func bestEffortJSON(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func normalizeCards(items []map[string]any, limit int) []response_models.GeneratedCard {
	out := make([]response_models.GeneratedCard, 0, len(items))
	for _, item := range items {
		q := pickString(item, questionKeys)
		a := pickString(item, answerKeys)
		if q == "" || a == "" {
			continue
		}
		out = append(out, response_models.GeneratedCard{Question: q, Answer: a})
		if len(out) == limit {
			break
		}
	}
	return out
}

func pickString(src map[string]any, keys []string) string {
	for _, k := range keys {
		if v, ok := src[k].(string); ok {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func excerpt(s string) string {
	if len(s) <= excerptLength {
		return s
	}
	return s[:excerptLength]
}

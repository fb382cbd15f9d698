package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/intasend"
)

// In-memory fakes behind the repository interfaces. The Tx variants accept a
// nil *gorm.DB because the fakes have no real transaction to join.

type fakeUsageRepo struct {
	mu           sync.Mutex
	records      map[string]*db_models.UsageRecord
	err          error
	incrementErr error
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{records: make(map[string]*db_models.UsageRecord)}
}

func usageKey(accountID uuid.UUID, periodKey string) string {
	return accountID.String() + "|" + periodKey
}

func (f *fakeUsageRepo) GetUsage(ctx context.Context, accountID uuid.UUID, periodKey string) (int, error) {
	rec, err := f.GetRecord(ctx, accountID, periodKey)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, nil
	}
	return rec.Count, nil
}

func (f *fakeUsageRepo) GetRecord(_ context.Context, accountID uuid.UUID, periodKey string) (*db_models.UsageRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.records[usageKey(accountID, periodKey)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeUsageRepo) Increment(_ context.Context, accountID uuid.UUID, periodKey string, n, freeQuota int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if f.incrementErr != nil {
		return 0, f.incrementErr
	}
	key := usageKey(accountID, periodKey)
	rec, ok := f.records[key]
	if !ok {
		rec = &db_models.UsageRecord{AccountID: accountID, PeriodKey: periodKey, FreeQuota: freeQuota}
		f.records[key] = rec
	}
	rec.Count += n
	return rec.Count, nil
}

type fakeSubRepo struct {
	mu   sync.Mutex
	subs map[uuid.UUID]*db_models.Subscription
	err  error
}

func newFakeSubRepo() *fakeSubRepo {
	return &fakeSubRepo{subs: make(map[uuid.UUID]*db_models.Subscription)}
}

func (f *fakeSubRepo) CurrentByAccount(_ context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	return f.CurrentByAccountTx(nil, accountID)
}

func (f *fakeSubRepo) CurrentByAccountTx(_ *gorm.DB, accountID uuid.UUID) (*db_models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	sub, ok := f.subs[accountID]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (f *fakeSubRepo) SaveTx(_ *gorm.DB, sub *db_models.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	cp := *sub
	f.subs[sub.AccountID] = &cp
	return nil
}

type fakeTxnRepo struct {
	mu                sync.Mutex
	byClientRef       map[string]*db_models.PaymentTransaction
	markSucceededHits int
	createErr         error
}

func newFakeTxnRepo() *fakeTxnRepo {
	return &fakeTxnRepo{byClientRef: make(map[string]*db_models.PaymentTransaction)}
}

func (f *fakeTxnRepo) Create(_ context.Context, txn *db_models.PaymentTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	cp := *txn
	f.byClientRef[txn.ClientReference] = &cp
	return nil
}

func (f *fakeTxnRepo) Save(_ context.Context, txn *db_models.PaymentTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *txn
	f.byClientRef[txn.ClientReference] = &cp
	return nil
}

func (f *fakeTxnRepo) FindByClientReference(_ context.Context, ref string) (*db_models.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ref == "" {
		return nil, nil
	}
	txn, ok := f.byClientRef[ref]
	if !ok {
		return nil, nil
	}
	cp := *txn
	return &cp, nil
}

func (f *fakeTxnRepo) FindByProviderReference(_ context.Context, ref string) (*db_models.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ref == "" {
		return nil, nil
	}
	for _, txn := range f.byClientRef {
		if txn.ProviderReference == ref {
			cp := *txn
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTxnRepo) UpdateStatus(_ context.Context, txn *db_models.PaymentTransaction, status db_models.TxnStatus, providerRef string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byClientRef[txn.ClientReference]
	if !ok {
		return errors.New("transaction not found")
	}
	stored.Status = status
	if providerRef != "" {
		stored.ProviderReference = providerRef
	}
	txn.Status = status
	return nil
}

func (f *fakeTxnRepo) MarkSucceeded(_ context.Context, txn *db_models.PaymentTransaction, providerRef string, activate func(tx *gorm.DB) error) error {
	f.mu.Lock()
	stored, ok := f.byClientRef[txn.ClientReference]
	if !ok {
		f.mu.Unlock()
		return errors.New("transaction not found")
	}
	// Guarded transition, as in the real repository: a row that is already
	// terminal is left alone and activation is skipped.
	if stored.Status != db_models.TxnStatusInitiated && stored.Status != db_models.TxnStatusPending {
		f.mu.Unlock()
		return nil
	}
	prev := stored.Status
	stored.Status = db_models.TxnStatusSucceeded
	if providerRef != "" {
		stored.ProviderReference = providerRef
	}
	f.markSucceededHits++
	f.mu.Unlock()

	if err := activate(nil); err != nil {
		f.mu.Lock()
		stored.Status = prev
		f.markSucceededHits--
		f.mu.Unlock()
		return err
	}
	txn.Status = db_models.TxnStatusSucceeded
	return nil
}

func (f *fakeTxnRepo) get(ref string) *db_models.PaymentTransaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byClientRef[ref]
}

type fakePlanRepo struct {
	plans map[string]*db_models.Plan
}

func newFakePlanRepo(plans ...*db_models.Plan) *fakePlanRepo {
	f := &fakePlanRepo{plans: make(map[string]*db_models.Plan)}
	for _, p := range plans {
		f.plans[p.Code] = p
	}
	return f
}

func (f *fakePlanRepo) FindActiveByCode(_ context.Context, code string) (*db_models.Plan, error) {
	plan, ok := f.plans[code]
	if !ok || !plan.IsActive {
		return nil, nil
	}
	return plan, nil
}

func (f *fakePlanRepo) ListActive(_ context.Context) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, p := range f.plans {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeCheckoutClient struct {
	verified      bool
	checkoutID    string
	checkoutURL   string
	checkoutErr   error
	checkoutCalls int
}

func (f *fakeCheckoutClient) CreateCheckout(_ context.Context, _ intasend.CheckoutRequest) (*intasend.CheckoutResponse, error) {
	f.checkoutCalls++
	if f.checkoutErr != nil {
		return nil, f.checkoutErr
	}
	return &intasend.CheckoutResponse{ID: f.checkoutID, URL: f.checkoutURL}, nil
}

func (f *fakeCheckoutClient) VerifyWebhook(_ intasend.WebhookEvent) bool {
	return f.verified
}

type fakeAccountRepo struct {
	byID       map[uuid.UUID]*db_models.Account
	byEmail    map[string]*db_models.Account
	byUsername map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:       make(map[uuid.UUID]*db_models.Account),
		byEmail:    make(map[string]*db_models.Account),
		byUsername: make(map[string]*db_models.Account),
	}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byID[account.ID] = account
	f.byEmail[account.Email] = account
	f.byUsername[account.Username] = account
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	return f.byID[id], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*db_models.Account, error) {
	return f.byUsername[username], nil
}

type fakeDeckRepo struct {
	decks map[uuid.UUID]*db_models.Deck
}

func newFakeDeckRepo() *fakeDeckRepo {
	return &fakeDeckRepo{decks: make(map[uuid.UUID]*db_models.Deck)}
}

func (f *fakeDeckRepo) Insert(_ context.Context, deck *db_models.Deck) error {
	if deck.ID == uuid.Nil {
		deck.ID = uuid.New()
	}
	f.decks[deck.ID] = deck
	return nil
}

func (f *fakeDeckRepo) Update(_ context.Context, deck *db_models.Deck) error {
	f.decks[deck.ID] = deck
	return nil
}

func (f *fakeDeckRepo) Delete(_ context.Context, deck *db_models.Deck) error {
	delete(f.decks, deck.ID)
	return nil
}

func (f *fakeDeckRepo) FindByIdForAccount(_ context.Context, deckID, accountID uuid.UUID) (*db_models.Deck, error) {
	deck, ok := f.decks[deckID]
	if !ok || deck.AccountID != accountID {
		return nil, nil
	}
	return deck, nil
}

func (f *fakeDeckRepo) ListByAccount(_ context.Context, accountID uuid.UUID, page, perPage int) ([]db_models.Deck, int64, error) {
	var out []db_models.Deck
	for _, d := range f.decks {
		if d.AccountID == accountID {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

type fakeCardRepo struct {
	cards   map[uuid.UUID]*db_models.Flashcard
	ownerOf map[uuid.UUID]uuid.UUID // deckID -> accountID
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{
		cards:   make(map[uuid.UUID]*db_models.Flashcard),
		ownerOf: make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeCardRepo) Insert(_ context.Context, card *db_models.Flashcard) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) InsertBatch(_ context.Context, cards []db_models.Flashcard) error {
	for i := range cards {
		if cards[i].ID == uuid.Nil {
			cards[i].ID = uuid.New()
		}
		cp := cards[i]
		f.cards[cp.ID] = &cp
	}
	return nil
}

func (f *fakeCardRepo) Update(_ context.Context, card *db_models.Flashcard) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) Delete(_ context.Context, card *db_models.Flashcard) error {
	delete(f.cards, card.ID)
	return nil
}

func (f *fakeCardRepo) FindByIdForAccount(_ context.Context, cardID, accountID uuid.UUID) (*db_models.Flashcard, error) {
	card, ok := f.cards[cardID]
	if !ok {
		return nil, nil
	}
	if f.ownerOf[card.DeckID] != accountID {
		return nil, nil
	}
	return card, nil
}

func (f *fakeCardRepo) ListByDeck(_ context.Context, deckID uuid.UUID, page, perPage int) ([]db_models.Flashcard, int64, error) {
	cards, err := f.ListAllByDeck(context.Background(), deckID)
	return cards, int64(len(cards)), err
}

func (f *fakeCardRepo) ListAllByDeck(_ context.Context, deckID uuid.UUID) ([]db_models.Flashcard, error) {
	var out []db_models.Flashcard
	for _, c := range f.cards {
		if c.DeckID == deckID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCardRepo) ListByAccount(_ context.Context, accountID uuid.UUID, page, perPage int) ([]db_models.Flashcard, int64, error) {
	var out []db_models.Flashcard
	for _, c := range f.cards {
		if f.ownerOf[c.DeckID] == accountID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

type fakeGenRepo struct {
	generations []*db_models.AIGeneration
}

func (f *fakeGenRepo) Insert(_ context.Context, gen *db_models.AIGeneration) error {
	if gen.ID == uuid.Nil {
		gen.ID = uuid.New()
	}
	f.generations = append(f.generations, gen)
	return nil
}

func (f *fakeGenRepo) Save(_ context.Context, gen *db_models.AIGeneration) error {
	return nil
}

type fakeChatClient struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeChatClient) Complete(_ context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

type fakeProgressRepo struct {
	entries map[string]*db_models.Progress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[string]*db_models.Progress)}
}

func progressKey(accountID, flashcardID uuid.UUID) string {
	return accountID.String() + "|" + flashcardID.String()
}

func (f *fakeProgressRepo) Upsert(_ context.Context, progress *db_models.Progress) error {
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	cp := *progress
	f.entries[progressKey(progress.AccountID, progress.FlashcardID)] = &cp
	return nil
}

func (f *fakeProgressRepo) FindByAccountAndFlashcard(_ context.Context, accountID, flashcardID uuid.UUID) (*db_models.Progress, error) {
	p, ok := f.entries[progressKey(accountID, flashcardID)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) ListByAccount(_ context.Context, accountID uuid.UUID, deckID, flashcardID *uuid.UUID) ([]db_models.Progress, error) {
	var out []db_models.Progress
	for _, p := range f.entries {
		if p.AccountID != accountID {
			continue
		}
		if deckID != nil && p.DeckID != *deckID {
			continue
		}
		if flashcardID != nil && p.FlashcardID != *flashcardID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProgressRepo) Aggregates(_ context.Context, accountID uuid.UUID) (*repositories.ProgressAggregates, error) {
	agg := &repositories.ProgressAggregates{}
	for _, p := range f.entries {
		if p.AccountID != accountID {
			continue
		}
		agg.TotalCorrect += int64(p.CorrectAttempts)
		agg.TotalAttempts += int64(p.StudyCount)
		agg.TotalStudyTime += p.TotalStudyTime
	}
	return agg, nil
}

func (f *fakeProgressRepo) CountMastered(_ context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.entries {
		if p.AccountID == accountID && p.ReviewStatus == db_models.ReviewStatusMastered {
			n++
		}
	}
	return n, nil
}

func (f *fakeProgressRepo) StudiedPerDeck(_ context.Context, accountID uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int)
	for _, p := range f.entries {
		if p.AccountID == accountID {
			out[p.DeckID] += p.StudyCount
		}
	}
	return out, nil
}

type fakeStatsRepo struct {
	stats map[uuid.UUID]*db_models.AccountStats
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{stats: make(map[uuid.UUID]*db_models.AccountStats)}
}

func (f *fakeStatsRepo) GetOrCreate(_ context.Context, accountID uuid.UUID) (*db_models.AccountStats, error) {
	s, ok := f.stats[accountID]
	if !ok {
		s = &db_models.AccountStats{AccountID: accountID}
		s.ID = uuid.New()
		f.stats[accountID] = s
	}
	return s, nil
}

func (f *fakeStatsRepo) Save(_ context.Context, stats *db_models.AccountStats) error {
	f.stats[stats.AccountID] = stats
	return nil
}

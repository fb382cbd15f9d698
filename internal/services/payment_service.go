package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/request_models"
	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/intasend"
	"flashlearn/pkg/utils"
)

// CheckoutClient is the hosted-checkout provider boundary.
type CheckoutClient interface {
	CreateCheckout(ctx context.Context, req intasend.CheckoutRequest) (*intasend.CheckoutResponse, error)
	VerifyWebhook(ev intasend.WebhookEvent) bool
}

type PaymentServiceInterface interface {
	CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, req request_models.CreateCheckoutRequest) (*response_models.CreateCheckoutResponse, error)
	// RecordCallback is the sole entry point for provider callbacks.
	// Verification happens before any storage access; a duplicate callback
	// for an already-succeeded transaction is a silent no-op.
	RecordCallback(ctx context.Context, ev intasend.WebhookEvent) error
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	txnRepo      repositories.TransactionRepository
	planRepo     repositories.PlanRepository
	subSvc       SubscriptionServiceInterface
	client       CheckoutClient
	providerName string
}

func NewPaymentService(
	txnRepo repositories.TransactionRepository,
	planRepo repositories.PlanRepository,
	subSvc SubscriptionServiceInterface,
	client CheckoutClient,
	providerName string,
) PaymentServiceInterface {
	return &paymentService{
		txnRepo:      txnRepo,
		planRepo:     planRepo,
		subSvc:       subSvc,
		client:       client,
		providerName: providerName,
	}
}

func (p *paymentService) CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, req request_models.CreateCheckoutRequest) (*response_models.CreateCheckoutResponse, error) {
	plan, err := p.planRepo.FindActiveByCode(ctx, req.PlanCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	if plan.PriceMinor <= 0 {
		return nil, fmt.Errorf("%w: plan %s is not billable", utils.ErrValidation, plan.Code)
	}

	// The plan price is authoritative. A client echo that disagrees fails
	// closed before anything is persisted.
	if req.AmountMinor != nil && *req.AmountMinor != plan.PriceMinor {
		return nil, utils.ErrAmountMismatch
	}
	if req.Currency != "" && !strings.EqualFold(req.Currency, plan.Currency) {
		return nil, utils.ErrAmountMismatch
	}

	// The client reference exists before any provider interaction; it is the
	// idempotency key callbacks dedupe on.
	clientRef := uuid.NewString()

	txn := &db_models.PaymentTransaction{
		AccountID:       accountID,
		AmountMinor:     plan.PriceMinor,
		Currency:        strings.ToUpper(plan.Currency),
		Status:          db_models.TxnStatusInitiated,
		PlanCode:        plan.Code,
		ClientReference: clientRef,
		Provider:        p.providerName,
	}

	if err := p.txnRepo.Create(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	checkout, err := p.client.CreateCheckout(ctx, intasend.CheckoutRequest{
		APIRef:   clientRef,
		Amount:   utils.MinorToDecimal(plan.PriceMinor),
		Currency: txn.Currency,
		Comment:  fmt.Sprintf("Subscription %s", plan.Code),
	})
	if err != nil {
		if updErr := p.txnRepo.UpdateStatus(ctx, txn, db_models.TxnStatusFailed, ""); updErr != nil {
			log.Printf("checkout: failed to mark transaction %s failed: %v", clientRef, updErr)
		}
		return nil, fmt.Errorf("create checkout: %w", err)
	}

	txn.ProviderReference = checkout.ID
	if meta, err := json.Marshal(map[string]any{"checkout_url": checkout.URL}); err == nil {
		txn.Metadata = meta
	}
	if err := p.txnRepo.Save(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateCheckoutResponse{
		ClientReference: clientRef,
		CheckoutURL:     checkout.URL,
		AmountMinor:     plan.PriceMinor,
		Currency:        txn.Currency,
		Provider:        p.providerName,
	}, nil
}

func (p *paymentService) RecordCallback(ctx context.Context, ev intasend.WebhookEvent) error {
	if !p.client.VerifyWebhook(ev) {
		log.Printf("webhook: rejected unverified callback (invoice=%s)", ev.InvoiceID)
		return utils.ErrUnverifiedCallback
	}

	txn, err := p.txnRepo.FindByClientReference(ctx, ev.APIRef)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if txn == nil {
		txn, err = p.txnRepo.FindByProviderReference(ctx, ev.InvoiceID)
		if err != nil {
			return utils.ErrDatabaseError
		}
	}
	if txn == nil {
		return utils.ErrUnknownReference
	}

	target, err := mapProviderState(ev.State)
	if err != nil {
		return err
	}

	// Idempotency guard: a succeeded transaction is never reprocessed, so a
	// retried success callback cannot activate a second window.
	if txn.Status == db_models.TxnStatusSucceeded {
		if target == db_models.TxnStatusSucceeded {
			return nil
		}
		return utils.ErrInvalidTransition
	}

	if err := checkAmount(txn, ev); err != nil {
		return err
	}

	if txn.Status == target {
		// Duplicate delivery of a non-terminal state.
		return nil
	}
	if !txn.Status.CanTransitionTo(target) {
		return utils.ErrInvalidTransition
	}

	if target != db_models.TxnStatusSucceeded {
		if err := p.txnRepo.UpdateStatus(ctx, txn, target, ev.InvoiceID); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	// Status flip and subscription activation commit together or not at all.
	now := time.Now()
	err = p.txnRepo.MarkSucceeded(ctx, txn, ev.InvoiceID, func(tx *gorm.DB) error {
		_, actErr := p.subSvc.ActivateTx(tx, txn.AccountID, txn.PlanCode, now)
		return actErr
	})
	if err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	var ev intasend.WebhookEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := p.RecordCallback(c.Request.Context(), ev); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Callback processed")
}

func mapProviderState(state string) (db_models.TxnStatus, error) {
	switch strings.ToUpper(state) {
	case intasend.StatePending, intasend.StateProcessing:
		return db_models.TxnStatusPending, nil
	case intasend.StateComplete:
		return db_models.TxnStatusSucceeded, nil
	case intasend.StateFailed:
		return db_models.TxnStatusFailed, nil
	default:
		return "", fmt.Errorf("%w: unknown provider state %q", utils.ErrValidation, state)
	}
}

// checkAmount cross-checks the webhook's amount/currency against the stored
// transaction before any transition is applied.
func checkAmount(txn *db_models.PaymentTransaction, ev intasend.WebhookEvent) error {
	if ev.Value != "" {
		value, err := strconv.ParseFloat(ev.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: unparseable amount %q", utils.ErrValidation, ev.Value)
		}
		if int64(math.Round(value*100)) != txn.AmountMinor {
			return utils.ErrAmountMismatch
		}
	}
	if ev.Currency != "" && !strings.EqualFold(ev.Currency, txn.Currency) {
		return utils.ErrAmountMismatch
	}
	return nil
}
